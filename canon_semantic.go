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

import (
	"regexp"
	"sort"
	"strings"
)

// defaultSchemeHttp assigns "http" to a schemeless URL, then reruns the
// pathish split on the old path so any authority that was sitting there
// (e.g. "example.com/x" parsed with no scheme at all, which leaves the
// whole text in path) gets recovered now that the scheme makes it routable
// as a special URL. The rerun sees only the path: for a schemeless URL
// whose "//" authority Parse already split out ("//example.com/x"), the
// slashes, userinfo, host and port are replaced by what the path alone
// yields ("/x" gives slashes "/", host "x", empty path).
func defaultSchemeHttp(u *ParsedUrl) {
	if !u.Scheme.IsEmpty() {
		return
	}
	u.Scheme = "http"
	u.ColonAfterScheme = ":"
	if u.Path.IsEmpty() {
		return
	}
	slashes, username, colonBeforePassword, password, atSign, host, colonBeforePort, port, path :=
		parsePathish("http", u.Path.String())
	u.Slashes = ByteString(slashes)
	u.Username = ByteString(username)
	u.ColonBeforePassword = ByteString(colonBeforePassword)
	u.Password = ByteString(password)
	u.AtSign = ByteString(atSign)
	u.Host = ByteString(host)
	u.ColonBeforePort = ByteString(colonBeforePort)
	u.Port = ByteString(port)
	u.Path = ByteString(path)
}

// pctDecodeRepeatedlyExceptQuery fixed-point percent-decodes every slot
// except query, which gets its own recoding rules later in the pipeline
// (lessDumbPctRecodeQuery).
func pctDecodeRepeatedlyExceptQuery(u *ParsedUrl) {
	u.Scheme = pctDecodeRepeatedly(u.Scheme)
	u.Username = pctDecodeRepeatedly(u.Username)
	u.Password = pctDecodeRepeatedly(u.Password)
	u.Host = pctDecodeRepeatedly(u.Host)
	u.Port = pctDecodeRepeatedly(u.Port)
	u.Path = pctDecodeRepeatedly(u.Path)
	u.Fragment = pctDecodeRepeatedly(u.Fragment)
}

var leadingOrTrailingDotsRe = regexp.MustCompile(`^\.+|\.+$`)
var twoOrMoreDotsRe = regexp.MustCompile(`\.{2,}`)

// fixHostDots strips leading/trailing runs of '.' from host and collapses
// any interior run of consecutive '.' to a single dot.
func fixHostDots(u *ParsedUrl) {
	u.Host = u.Host.ReplaceAll(leadingOrTrailingDotsRe, "")
	u.Host = u.Host.ReplaceAll(twoOrMoreDotsRe, ".")
}

// removeUserinfo clears username/password and their separators.
func removeUserinfo(u *ParsedUrl) {
	u.Username = ""
	u.ColonBeforePassword = ""
	u.Password = ""
	u.AtSign = ""
}

// lessDumbEncodeSchemeHostPortFragment is the byte predicate shared by
// scheme, host, port, and fragment in lessDumbPctEncode.
func lessDumbEncodeSchemeHostPortFragment(b byte) bool {
	return b <= 0x20 || b >= 0x7F || b == '#' || b == '%'
}

// lessDumbEncodeUserinfo is username/password's predicate: the base set
// plus ':' and '@', which would otherwise be read back as authority
// separators.
func lessDumbEncodeUserinfo(b byte) bool {
	return lessDumbEncodeSchemeHostPortFragment(b) || b == ':' || b == '@'
}

// lessDumbEncodePath is path's predicate: the base set plus '?', which
// would otherwise be read back as the start of the query.
func lessDumbEncodePath(b byte) bool {
	return lessDumbEncodeSchemeHostPortFragment(b) || b == '?'
}

// lessDumbPctEncode re-percent-encodes each component with its own
// predicate. Encoding is applied to each slot exactly once. It is not
// idempotent over its own output: every predicate here flags '%', so a
// second pass would escape the '%' of each escape the first pass emitted.
func lessDumbPctEncode(u *ParsedUrl) {
	u.Scheme = pctEncode(u.Scheme, lessDumbEncodeSchemeHostPortFragment)
	u.Host = pctEncode(u.Host, lessDumbEncodeSchemeHostPortFragment)
	u.Port = pctEncode(u.Port, lessDumbEncodeSchemeHostPortFragment)
	u.Fragment = pctEncode(u.Fragment, lessDumbEncodeSchemeHostPortFragment)
	u.Username = pctEncode(u.Username, lessDumbEncodeUserinfo)
	u.Password = pctEncode(u.Password, lessDumbEncodeUserinfo)
	u.Path = pctEncode(u.Path, lessDumbEncodePath)
}

// lessDumbEncodeQueryPart is the byte predicate lessDumbPctRecodeQuery
// applies to each side of every "key=value" query param.
func lessDumbEncodeQueryPart(b byte) bool {
	return b <= 0x20 || b >= 0x7F || b == '#' || b == '%' || b == '&' || b == '='
}

// lessDumbPctRecodeQuery splits the query on '&', then each param on its
// first '=', fixed-point-decodes each side, and re-encodes with the query
// predicate. Param and key/value boundaries come from the raw bytes, so a
// '&' or '=' that only appears after decoding never becomes a boundary.
func lessDumbPctRecodeQuery(u *ParsedUrl) {
	if u.Query.IsEmpty() {
		return
	}
	parts := strings.Split(u.Query.String(), "&")
	for i, part := range parts {
		key, value, hasEquals := strings.Cut(part, "=")
		key = pctEncode(pctDecodeRepeatedly(ByteString(key)), lessDumbEncodeQueryPart).String()
		if hasEquals {
			value = pctEncode(pctDecodeRepeatedly(ByteString(value)), lessDumbEncodeQueryPart).String()
			parts[i] = key + "=" + value
		} else {
			parts[i] = key
		}
	}
	u.Query = ByteString(strings.Join(parts, "&"))
}

var twoOrMoreSlashesRe = regexp.MustCompile(`//+`)

// collapseConsecutiveSlashes replaces runs of '/' in path with a single
// '/', for special-scheme URLs only.
func collapseConsecutiveSlashes(u *ParsedUrl) {
	if !u.IsSpecial() {
		return
	}
	u.Path = u.Path.ReplaceAll(twoOrMoreSlashesRe, "/")
}

// alphaReorderQuery splits the query on '&' and sorts the parts
// lexicographically by raw bytes, preserving empty parts (which, sorting
// on raw bytes, come first).
func alphaReorderQuery(u *ParsedUrl) {
	if u.Query.IsEmpty() {
		return
	}
	parts := strings.Split(u.Query.String(), "&")
	sort.SliceStable(parts, func(i, j int) bool { return parts[i] < parts[j] })
	u.Query = ByteString(strings.Join(parts, "&"))
}
