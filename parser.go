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

// Parse decomposes raw into a ParsedUrl. It never fails: every byte of raw
// ends up in exactly one of the 17 slots, so ParsedUrl.String() reproduces
// raw exactly. No decoding or validation happens here; that's the
// canonicalizer's job.
//
// The three-pass structure (junk stripping, top-level split, pathish split)
// is hand-written scanning rather than regexp: the top-level grammar needs
// the "scheme and colon are present only as a pair" rule, which RE2 can't
// express in one pattern, and a scanner that mirrors the grammar directly
// stays exactly as permissive as the grammar itself.
func Parse(raw string) ParsedUrl {
	leadingJunk, core, trailingJunk := stripJunk(raw)

	scheme, colonAfterScheme, pathish, questionMark, query, hashSign, fragment := topLevelSplit(core)

	cleanScheme := stripTabsAndNewlinesStr(ByteString(scheme).AsciiLower().String())
	slashes, username, colonBeforePassword, password, atSign, host, colonBeforePort, port, path :=
		parsePathish(cleanScheme, pathish)

	return ParsedUrl{
		LeadingJunk:         ByteString(leadingJunk),
		Scheme:              ByteString(scheme),
		ColonAfterScheme:    ByteString(colonAfterScheme),
		Slashes:             ByteString(slashes),
		Username:            ByteString(username),
		ColonBeforePassword: ByteString(colonBeforePassword),
		Password:            ByteString(password),
		AtSign:              ByteString(atSign),
		Host:                ByteString(host),
		ColonBeforePort:     ByteString(colonBeforePort),
		Port:                ByteString(port),
		Path:                ByteString(path),
		QuestionMark:        ByteString(questionMark),
		Query:               ByteString(query),
		HashSign:            ByteString(hashSign),
		Fragment:            ByteString(fragment),
		TrailingJunk:        ByteString(trailingJunk),
	}
}

// ParseBytes parses a raw byte slice. Go strings carry arbitrary bytes, so
// this is Parse over a straight byte-preserving conversion.
func ParseBytes(raw []byte) ParsedUrl {
	return Parse(string(raw))
}

// stripJunk splits raw into its leading run of 0x00-0x20 bytes, the core
// text, and its trailing run of 0x00-0x20 bytes. A run of junk can consume
// the entire string, in which case core is empty and trailingJunk is empty
// too (there's nothing left to be trailing).
func stripJunk(raw string) (leadingJunk, core, trailingJunk string) {
	start := 0
	for start < len(raw) && isC0OrSpace(raw[start]) {
		start++
	}
	if start == len(raw) {
		return raw, "", ""
	}
	end := len(raw)
	for end > start && isC0OrSpace(raw[end-1]) {
		end--
	}
	return raw[:start], raw[start:end], raw[end:]
}

// topLevelSplit cuts the core text into scheme, pathish, query, and
// fragment. The scheme-and-colon pair is found by searching for the first
// ':' in the whole string (not just before any '?'/'#'): a scheme is any
// run of non-colon bytes starting with a letter, so it happily spans '?'
// and '#' bytes looking for its terminating colon.
func topLevelSplit(core string) (scheme, colonAfterScheme, pathish, questionMark, query, hashSign, fragment string) {
	rest := core
	if len(core) > 0 && isAsciiLetter(core[0]) {
		if idx := strings.IndexByte(core, ':'); idx != -1 {
			scheme = core[:idx]
			colonAfterScheme = ":"
			rest = core[idx+1:]
		}
	}

	pathishEnd := len(rest)
	for i := 0; i < len(rest); i++ {
		if rest[i] == '?' || rest[i] == '#' {
			pathishEnd = i
			break
		}
	}
	pathish = rest[:pathishEnd]
	if pathishEnd == len(rest) {
		return
	}

	if rest[pathishEnd] == '?' {
		questionMark = "?"
		queryStart := pathishEnd + 1
		queryEnd := len(rest)
		for i := queryStart; i < len(rest); i++ {
			if rest[i] == '#' {
				queryEnd = i
				break
			}
		}
		query = rest[queryStart:queryEnd]
		if queryEnd < len(rest) && rest[queryEnd] == '#' {
			hashSign = "#"
			fragment = rest[queryEnd+1:]
		}
		return
	}

	// rest[pathishEnd] == '#'
	hashSign = "#"
	fragment = rest[pathishEnd+1:]
	return
}

// parsePathish routes the pathish text to the file / special /
// nonspecial-opaque grammar based on the cleaned scheme, then splits out
// any authority that grammar finds.
//
// It's shared between the initial Parse and the defaultSchemeHttp
// canonicalizer operation, which reruns this exact step once it has
// assigned scheme="http" to a previously-schemeless URL.
func parsePathish(cleanScheme, pathish string) (slashes, username, colonBeforePassword, password, atSign, host, colonBeforePort, port, path string) {
	switch {
	case cleanScheme == "file":
		prefix, rest, ok := matchSlashPrefix(pathish, true, 2)
		if !ok {
			path = pathish
			return
		}
		slashes = prefix
		hostEnd := len(rest)
		for i := 0; i < len(rest); i++ {
			if isSlashByte(rest[i]) {
				hostEnd = i
				break
			}
		}
		host = rest[:hostEnd]
		path = rest[hostEnd:]
		return

	case isSpecialScheme(cleanScheme):
		i := 0
		for i < len(pathish) && isSlashOrJunk(pathish[i]) {
			i++
		}
		slashes = pathish[:i]
		rest := pathish[i:]
		authEnd := len(rest)
		for j := 0; j < len(rest); j++ {
			if isSlashByte(rest[j]) {
				authEnd = j
				break
			}
		}
		authority := rest[:authEnd]
		path = rest[authEnd:]
		username, colonBeforePassword, password, atSign, host, colonBeforePort, port = splitAuthority(authority)
		return

	default:
		prefix, rest, ok := matchSlashPrefix(pathish, false, 2)
		if !ok {
			path = pathish
			return
		}
		slashes = prefix
		authEnd := len(rest)
		for j := 0; j < len(rest); j++ {
			if rest[j] == '/' {
				authEnd = j
				break
			}
		}
		authority := rest[:authEnd]
		path = rest[authEnd:]
		username, colonBeforePassword, password, atSign, host, colonBeforePort, port = splitAuthority(authority)
		return
	}
}

// isSlashByte reports whether b is a forward or back slash.
func isSlashByte(b byte) bool { return b == '/' || b == '\\' }

// isSlashOrJunk reports whether b is a slash, backslash, CR, LF, or TAB —
// the character class special-pathish's slashes group draws from.
func isSlashOrJunk(b byte) bool { return isSlashByte(b) || isTabOrNewline(b) }

// matchSlashPrefix scans the file-pathish / nonspecial-pathish two-slash
// prefix: an optional run of CR/LF/TAB, then exactly reps repetitions of
// (a slash byte, then another optional CR/LF/TAB run). When
// backslashAllowed is false only '/' counts as the slash byte; the
// nonspecial grammar is deliberately stricter about backslashes than the
// file grammar.
func matchSlashPrefix(s string, backslashAllowed bool, reps int) (prefix, rest string, ok bool) {
	isSlash := func(b byte) bool {
		if backslashAllowed {
			return isSlashByte(b)
		}
		return b == '/'
	}
	i := 0
	for i < len(s) && isTabOrNewline(s[i]) {
		i++
	}
	for r := 0; r < reps; r++ {
		if i >= len(s) || !isSlash(s[i]) {
			return "", s, false
		}
		i++
		for i < len(s) && isTabOrNewline(s[i]) {
			i++
		}
	}
	return s[:i], s[i:], true
}
