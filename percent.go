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

// isHexDigit reports whether b is an ASCII hex digit, case-insensitively.
func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// hexVal returns the numeric value of an ASCII hex digit. The caller must
// have already checked isHexDigit(b).
func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

const upperHex = "0123456789ABCDEF"

// pctDecode decodes every well-formed %HH triple in b to its literal byte.
// A triple with a non-hex digit, or truncated by the end of the string, is
// left untouched rather than treated as an error; nothing in this package
// rejects input.
func pctDecode(b ByteString) ByteString {
	s := b.String()
	if !strings.ContainsRune(s, '%') {
		return b
	}
	var sb strings.Builder
	sb.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			sb.WriteByte(hexVal(s[i+1])<<4 | hexVal(s[i+2]))
			i += 3
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return ByteString(sb.String())
}

// pctDecodeRepeatedly applies pctDecode until the string stops changing,
// unwrapping doubly- and triply-escaped input (e.g. "%2541" -> "%41" ->
// "A").
func pctDecodeRepeatedly(b ByteString) ByteString {
	for {
		decoded := pctDecode(b)
		if decoded == b {
			return decoded
		}
		b = decoded
	}
}

// ShouldEncode is a predicate deciding whether a given byte must be
// percent-encoded. Each canonicalizer operation supplies its own predicate,
// so a single pctEncode implementation serves every component's
// differently-scoped encode set.
type ShouldEncode func(b byte) bool

// pctEncode percent-encodes, with uppercase hex digits, every byte in b for
// which shouldEncode returns true. Bytes for which it returns false pass
// through unchanged, including an existing '%' that is not itself flagged
// for encoding.
func pctEncode(b ByteString, shouldEncode ShouldEncode) ByteString {
	s := b.String()
	needsWork := false
	for i := 0; i < len(s); i++ {
		if shouldEncode(s[i]) {
			needsWork = true
			break
		}
	}
	if !needsWork {
		return b
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEncode(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&0x0F])
		} else {
			sb.WriteByte(c)
		}
	}
	return ByteString(sb.String())
}

// byteInRanges builds a ShouldEncode predicate from individually listed
// bytes and inclusive [lo,hi] ranges.
func byteInRanges(singles string, ranges ...[2]byte) ShouldEncode {
	return func(b byte) bool {
		if strings.IndexByte(singles, b) != -1 {
			return true
		}
		for _, r := range ranges {
			if b >= r[0] && b <= r[1] {
				return true
			}
		}
		return false
	}
}
