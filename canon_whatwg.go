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

// removeLeadingTrailingJunk clears the leadingJunk/trailingJunk slots
// captured by Parse's junk-stripping pass.
func removeLeadingTrailingJunk(u *ParsedUrl) {
	u.LeadingJunk = ""
	u.TrailingJunk = ""
}

// removeTabsAndNewlines strips CR/LF/TAB from every slot except
// leadingJunk/trailingJunk, the WHATWG "remove all ASCII tab or newline"
// step applied across the whole record. The single-character separator
// slots (colons, '@', '?', '#') can only ever hold their literal separator
// byte, so they need no stripping.
func removeTabsAndNewlines(u *ParsedUrl) {
	u.Scheme = stripTabsAndNewlines(u.Scheme)
	u.Slashes = stripTabsAndNewlines(u.Slashes)
	u.Username = stripTabsAndNewlines(u.Username)
	u.Password = stripTabsAndNewlines(u.Password)
	u.Host = stripTabsAndNewlines(u.Host)
	u.Port = stripTabsAndNewlines(u.Port)
	u.Path = stripTabsAndNewlines(u.Path)
	u.Query = stripTabsAndNewlines(u.Query)
	u.Fragment = stripTabsAndNewlines(u.Fragment)
}

// lowercaseScheme ASCII-lowercases the scheme slot.
func lowercaseScheme(u *ParsedUrl) {
	u.Scheme = u.Scheme.AsciiLower()
}

// elideDefaultPort clears port (and its separator) when it equals the
// scheme's default port. The comparison is numeric, so "080" still matches
// http's default; a port that isn't plain decimal never matches and is
// left alone.
func elideDefaultPort(u *ParsedUrl) {
	if u.Port.IsEmpty() {
		return
	}
	defaultPort, ok := defaultPortFor(u.CleanScheme())
	if !ok {
		return
	}
	if portNum, valid := parsePortNumber(u.Port.String()); valid && portNum == defaultPort {
		u.Port = ""
		u.ColonBeforePort = ""
	}
}

// parsePortNumber parses a decimal port string strictly (no sign, no
// leading junk): a malformed port never matches a default port and is left
// exactly as parsed.
func parsePortNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
		if n > 1<<31 {
			return 0, false
		}
	}
	return n, true
}

// cleanUpUserinfo drops userinfo remnants that have lost their delimiter:
// with no '@' there is no userinfo at all, and with no ':' there is no
// password, whatever bytes the slots happen to hold.
func cleanUpUserinfo(u *ParsedUrl) {
	if u.AtSign.IsEmpty() {
		u.Username = ""
		u.ColonBeforePassword = ""
		u.Password = ""
	}
	if u.ColonBeforePassword.IsEmpty() {
		u.Password = ""
	}
}

// twoSlashes normalizes whatever mix of slashes, backslashes, and CR/LF/TAB
// the parser preserved to the canonical "//", for special-scheme URLs that
// have any slashes at all. A special URL with no slashes (e.g. "http:foo")
// is left without them.
func twoSlashes(u *ParsedUrl) {
	if u.IsSpecial() && !u.Slashes.IsEmpty() {
		u.Slashes = "//"
	}
}

// pctDecodeAll decodes every well-formed %HH triple in each slot, once.
func pctDecodeAll(u *ParsedUrl) {
	u.Scheme = pctDecode(u.Scheme)
	u.Username = pctDecode(u.Username)
	u.Password = pctDecode(u.Password)
	u.Host = pctDecode(u.Host)
	u.Port = pctDecode(u.Port)
	u.Path = pctDecode(u.Path)
	u.Query = pctDecode(u.Query)
	u.Fragment = pctDecode(u.Fragment)
}

// normalizeIpAddress rewrites a host that parses as a liberal IPv4 literal
// into its canonical dotted-decimal form.
func normalizeIpAddress(u *ParsedUrl) {
	host := u.Host.String()
	if host == "" || strings.HasPrefix(host, "[") {
		return
	}
	v := parseIPv4(host)
	if v == noIPv4 {
		return
	}
	u.Host = ByteString(formatIPv4(v))
}

// punycodeSpecialHost converts the host of a special-scheme URL to its
// ASCII/Punycode form. file URLs are exempt: their host names a local
// machine, not a DNS name to be IDNA-mapped.
func punycodeSpecialHost(u *ParsedUrl) {
	if !u.IsSpecial() || u.CleanScheme() == "file" {
		return
	}
	u.Host = ByteString(punycodeHost(u.Host.String()))
}

// whatwgShouldEncode is the byte predicate WHATWG percent-encoding applies
// across every slot: C0 controls, space, DEL, and everything above ASCII.
// It does not flag '%' itself: this pipeline has no decode step, so an
// input that already carries escapes must stay fixed under repeated
// canonicalization rather than growing "%25" layers on every pass.
func whatwgShouldEncode(b byte) bool {
	return b <= 0x20 || b >= 0x7F
}

// pctEncodeWhatwg percent-encodes every slot using the WHATWG predicate.
func pctEncodeWhatwg(u *ParsedUrl) {
	u.Scheme = pctEncode(u.Scheme, whatwgShouldEncode)
	u.Username = pctEncode(u.Username, whatwgShouldEncode)
	u.Password = pctEncode(u.Password, whatwgShouldEncode)
	u.Host = pctEncode(u.Host, whatwgShouldEncode)
	u.Port = pctEncode(u.Port, whatwgShouldEncode)
	u.Path = pctEncode(u.Path, whatwgShouldEncode)
	u.Query = pctEncode(u.Query, whatwgShouldEncode)
	u.Fragment = pctEncode(u.Fragment, whatwgShouldEncode)
}

// fixBackslashes rewrites every backslash in the slashes and path slots to
// a forward slash, for special-scheme URLs.
func fixBackslashes(u *ParsedUrl) {
	if !u.IsSpecial() {
		return
	}
	if strings.Contains(u.Slashes.String(), "\\") {
		u.Slashes = ByteString(strings.ReplaceAll(u.Slashes.String(), "\\", "/"))
	}
	if strings.Contains(u.Path.String(), "\\") {
		u.Path = ByteString(strings.ReplaceAll(u.Path.String(), "\\", "/"))
	}
}

// leadingSlash ensures a non-empty special-scheme path begins with "/".
// An empty path is left empty here; emptyPathToSlash handles it.
func leadingSlash(u *ParsedUrl) {
	if !u.IsSpecial() || u.Path.IsEmpty() {
		return
	}
	if u.Path.At(0) != '/' {
		u.Path = ByteString("/").Concat(u.Path)
	}
}

// normalizePathDots removes "." and ".." dot-segments from a
// special-scheme path per RFC 3986 section 5.2.4.
func normalizePathDots(u *ParsedUrl) {
	if !u.IsSpecial() {
		return
	}
	u.Path = ByteString(removeDotSegments(u.Path.String()))
}

// emptyPathToSlash gives a special-scheme URL with no path at all a
// canonical "/" path.
func emptyPathToSlash(u *ParsedUrl) {
	if u.IsSpecial() && u.Path.IsEmpty() {
		u.Path = "/"
	}
}

// removeDotSegments implements RFC 3986 section 5.2.4 over a flat string,
// emitting resolved segments into an output list instead of a second
// buffer.
func removeDotSegments(path string) string {
	if path == "" {
		return path
	}
	var out []string
	rest := path
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "../"):
			rest = rest[3:]
		case strings.HasPrefix(rest, "./"):
			rest = rest[2:]
		case strings.HasPrefix(rest, "/./"):
			rest = "/" + rest[3:]
		case rest == "/.":
			rest = "/"
		case strings.HasPrefix(rest, "/../"):
			rest = "/" + rest[4:]
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case rest == "/..":
			rest = "/"
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case rest == "." || rest == "..":
			rest = ""
		default:
			segEnd := len(rest)
			start := 0
			if strings.HasPrefix(rest, "/") {
				start = 1
			}
			if idx := strings.IndexByte(rest[start:], '/'); idx != -1 {
				segEnd = start + idx
			}
			out = append(out, rest[:segEnd])
			rest = rest[segEnd:]
		}
	}
	return strings.Join(out, "")
}
