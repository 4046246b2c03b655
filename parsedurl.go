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

// ParsedUrl is the central value of this package: a record of 17
// byte-string slots that together partition a parsed URL. Concatenating
// the slots in the order they're declared here reproduces the original
// input exactly, before any canonicalization runs (see String).
//
// No slot is ever a distinguished null; an absent field is simply an empty
// ByteString. ParsedUrl is owned by its caller: canonicalizer operations
// mutate a ParsedUrl in place, and there is no internal synchronization,
// matching the single-threaded-per-value model described in the package
// concurrency notes.
type ParsedUrl struct {
	LeadingJunk         ByteString
	Scheme              ByteString
	ColonAfterScheme    ByteString
	Slashes             ByteString
	Username            ByteString
	ColonBeforePassword ByteString
	Password            ByteString
	AtSign              ByteString
	Host                ByteString
	ColonBeforePort     ByteString
	Port                ByteString
	Path                ByteString
	QuestionMark        ByteString
	Query               ByteString
	HashSign            ByteString
	Fragment            ByteString
	TrailingJunk        ByteString
}

// Clone returns a value copy of u. ParsedUrl holds only value types, so a
// plain struct copy is a deep copy; Resolve relies on this to avoid
// aliasing two logically distinct URLs.
func (u ParsedUrl) Clone() ParsedUrl { return u }

// CleanScheme returns the ASCII-lowercased scheme with any CR/LF/TAB
// removed, the form used throughout the parser and canonicalizers to look
// up the special-schemes table without mutating Scheme itself.
func (u ParsedUrl) CleanScheme() string {
	return stripTabsAndNewlinesStr(u.Scheme.AsciiLower().String())
}

// IsSpecial reports whether the URL's scheme is one of the special schemes
// (ftp, gopher, http, https, ws, wss, file).
func (u ParsedUrl) IsSpecial() bool {
	return isSpecialScheme(u.CleanScheme())
}

// HostPort returns the host, port separator, and port concatenated, the
// form a caller would dial.
func (u ParsedUrl) HostPort() ByteString {
	return u.Host.Concat(u.ColonBeforePort, u.Port)
}

// String concatenates all 17 slots in on-the-wire order. Called on a
// freshly-parsed ParsedUrl it reproduces the parsed input byte-for-byte.
func (u ParsedUrl) String() string {
	return u.LeadingJunk.Concat(
		u.Scheme, u.ColonAfterScheme, u.Slashes,
		u.Username, u.ColonBeforePassword, u.Password, u.AtSign,
		u.Host, u.ColonBeforePort, u.Port,
		u.Path, u.QuestionMark, u.Query, u.HashSign, u.Fragment,
		u.TrailingJunk,
	).String()
}
