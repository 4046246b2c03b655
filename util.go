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

// isAsciiLetter reports whether b is an ASCII letter.
func isAsciiLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isC0OrSpace reports whether b is a C0 control character or space
// (0x00-0x20 inclusive), the byte range leadingJunk/trailingJunk are made of.
func isC0OrSpace(b byte) bool { return b <= 0x20 }

// isTabOrNewline reports whether b is CR, LF, or TAB.
func isTabOrNewline(b byte) bool {
	return b == '\r' || b == '\n' || b == '\t'
}

// stripTabsAndNewlinesStr removes every CR, LF, and TAB byte from s.
func stripTabsAndNewlinesStr(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !isTabOrNewline(s[i]) {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// stripTabsAndNewlines is the ByteString-typed wrapper around
// stripTabsAndNewlinesStr, used directly by canonicalizer operations.
func stripTabsAndNewlines(b ByteString) ByteString {
	return ByteString(stripTabsAndNewlinesStr(b.String()))
}
