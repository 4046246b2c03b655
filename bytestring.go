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

// Package urlcanon parses, canonicalizes, and SSURT-serializes URLs found in
// web-archival pipelines. Inputs are treated as opaque byte sequences: the
// parser never fails, never validates against RFC 3986 grammars, and never
// percent-decodes unless a canonicalizer explicitly asks for it.
package urlcanon

import (
	"regexp"
	"strings"
)

// ByteString is a byte sequence over the full 0x00-0xFF range, addressed
// through Go's native string type. A Go string is already an uninterpreted
// byte slice, which is exactly the Latin-1 bijection this package needs: no
// rune validation, no UTF-8 coercion, every input byte survives untouched.
//
// ByteString carries the small set of operations the parser and
// canonicalizers need: length and indexed access, ASCII-only case folding,
// byte-oriented regex match/replace, substring, and concatenation. Treat
// values as immutable; every method returns a new ByteString rather than
// mutating the receiver.
type ByteString string

// Len returns the number of bytes in the string.
func (b ByteString) Len() int { return len(b) }

// At returns the byte at index i.
func (b ByteString) At(i int) byte { return b[i] }

// IsEmpty reports whether the string has no bytes.
func (b ByteString) IsEmpty() bool { return len(b) == 0 }

// String returns the underlying Go string.
func (b ByteString) String() string { return string(b) }

// Equal reports whether two ByteStrings hold identical bytes.
func (b ByteString) Equal(o ByteString) bool { return b == o }

// Concat appends the given ByteStrings to the receiver, in order.
func (b ByteString) Concat(others ...ByteString) ByteString {
	var sb strings.Builder
	sb.Grow(len(b))
	sb.WriteString(string(b))
	for _, o := range others {
		sb.WriteString(string(o))
	}
	return ByteString(sb.String())
}

// Slice returns the substring [start, end), matching Go slice semantics.
func (b ByteString) Slice(start, end int) ByteString { return b[start:end] }

// AsciiLower lowercases ASCII letters ('A'-'Z') only; every other byte,
// including anything above 0x7F, passes through unchanged. This mirrors the
// "ASCII-lowercase" operation WHATWG specifies for scheme and path
// normalization, which must not touch non-ASCII bytes.
func (b ByteString) AsciiLower() ByteString {
	buf := []byte(b)
	changed := false
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return b
	}
	return ByteString(buf)
}

// ReplaceAll applies re.ReplaceAllString to the underlying bytes.
func (b ByteString) ReplaceAll(re *regexp.Regexp, repl string) ByteString {
	return ByteString(re.ReplaceAllString(string(b), repl))
}

// MatchString reports whether re matches anywhere in the string.
func (b ByteString) MatchString(re *regexp.Regexp) bool {
	return re.MatchString(string(b))
}

// Split splits the string on every occurrence of sep, like strings.Split.
func (b ByteString) Split(sep string) []ByteString {
	parts := strings.Split(string(b), sep)
	out := make([]ByteString, len(parts))
	for i, p := range parts {
		out[i] = ByteString(p)
	}
	return out
}

// JoinByteStrings joins parts with sep, the ByteString analog of strings.Join.
func JoinByteStrings(parts []ByteString, sep string) ByteString {
	ss := make([]string, len(parts))
	for i, p := range parts {
		ss[i] = string(p)
	}
	return ByteString(strings.Join(ss, sep))
}
