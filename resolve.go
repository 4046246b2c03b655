/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package urlcanon

import "strings"

// Resolve produces the URL relative resolves to against base, as a new
// ParsedUrl (base and relative are both left untouched). It operates on
// already-parsed components, not on re-parsed strings, and it does not
// normalize dot-segments in the merged path; that's normalizePathDots'
// job in a canonicalizer pipeline, run separately if wanted.
func Resolve(base, relative ParsedUrl) ParsedUrl {
	result := relative.Clone()

	if !result.Slashes.IsEmpty() {
		if result.Scheme.IsEmpty() {
			result.Scheme = base.Scheme
		}
		return result
	}

	if !result.Scheme.IsEmpty() && !strings.EqualFold(result.Scheme.String(), base.Scheme.String()) {
		return result
	}

	result.Scheme = base.Scheme
	result.ColonAfterScheme = base.ColonAfterScheme
	result.Username = base.Username
	result.ColonBeforePassword = base.ColonBeforePassword
	result.Password = base.Password
	result.AtSign = base.AtSign
	result.Host = base.Host
	result.ColonBeforePort = base.ColonBeforePort
	result.Port = base.Port

	if result.Path.IsEmpty() && !relative.Host.IsEmpty() {
		result.Path = relative.Host
	}

	if result.Path.IsEmpty() || result.Path.At(0) == '/' {
		return result
	}

	result.Path = ByteString(dirname(base.Path.String())).Concat(result.Path)
	return result
}

// dirname returns path up to and including its last '/', or "" if path has
// none — the base each relative path merges onto.
func dirname(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if idx == -1 {
		return ""
	}
	return path[:idx+1]
}
