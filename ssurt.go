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

// Ssurt renders u in Sort-friendly URL Reordering Transform order: the
// host reversed and comma-delimited so that URLs sharing a parent domain
// sort adjacently, with every other slot reordered around it.
func (u ParsedUrl) Ssurt() string {
	return u.LeadingJunk.Concat(
		ByteString(ssurtHost(u.Host.String())), u.Slashes, u.Port, u.ColonBeforePort,
		u.Scheme, u.AtSign, u.Username, u.ColonBeforePassword, u.Password,
		u.ColonAfterScheme, u.Path, u.QuestionMark, u.Query, u.HashSign, u.Fragment,
		u.TrailingJunk,
	).String()
}

// ssurtHost transforms a host into its sort-friendly form, unless it's
// empty, a bracketed IPv6 literal, or an IPv4 address — all three sort
// fine as-is and aren't made of reversible dot-labels.
func ssurtHost(host string) string {
	if host == "" || strings.HasPrefix(host, "[") {
		return host
	}
	if parseIPv4(host) != noIPv4 {
		return host
	}
	return reverseHost(host)
}

// reverseHost splits h on its literal '.' positions only (an embedded ','
// is not a split point — it's textually converted to '.' within whatever
// segment it already falls in), reverses the segment order, rejoins them
// with ',', and appends a trailing ','. E.g. "x,y.b.c" -> "c,b,x.y,".
func reverseHost(h string) string {
	segments := strings.Split(h, ".")
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	for i, seg := range segments {
		segments[i] = strings.ReplaceAll(seg, ",", ".")
	}
	return strings.Join(segments, ",") + ","
}
