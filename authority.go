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

// splitAuthority decomposes an authority substring (userinfo@host:port,
// already isolated by the pathish grammar) into the five authority slots.
// It never fails: every byte of authority is accounted for in one slot or
// another, which is what lets ParsedUrl.String() reproduce the input
// exactly. The userinfo/host boundary is the last '@' (a password may
// itself contain '@'), and a bracketed IPv6 literal shields its colons
// from being mistaken for the port separator.
func splitAuthority(authority string) (username, colonBeforePassword, password, atSign, host, colonBeforePort, port string) {
	userinfo, hostport, hasAt := cutLastByte(authority, '@')
	if hasAt {
		atSign = "@"
	} else {
		hostport = authority
	}

	if hasAt {
		u, p, hasColon := cutFirstByte(userinfo, ':')
		username = u
		if hasColon {
			colonBeforePassword = ":"
			password = p
		}
	}

	if strings.HasPrefix(hostport, "[") {
		closeIdx := strings.IndexByte(hostport, ']')
		if closeIdx != -1 && (closeIdx+1 == len(hostport) || hostport[closeIdx+1] == ':') {
			host = hostport[:closeIdx+1]
			rest := hostport[closeIdx+1:]
			if rest != "" {
				colonBeforePort = ":"
				port = rest[1:]
			}
			return
		}
		// No closing ']', or bytes after it that don't start a port: the
		// bracket form doesn't apply, so it falls through to the plain
		// host split below, same as a non-bracketed host.
	}

	h, p, hasColon := cutFirstByte(hostport, ':')
	host = h
	if hasColon {
		colonBeforePort = ":"
		port = p
	}
	return
}

// cutLastByte splits s at the last occurrence of c, like strings.Cut but
// anchored to the final match instead of the first.
func cutLastByte(s string, c byte) (before, after string, found bool) {
	idx := strings.LastIndexByte(s, c)
	if idx == -1 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

// cutFirstByte splits s at the first occurrence of c.
func cutFirstByte(s string, c byte) (before, after string, found bool) {
	idx := strings.IndexByte(s, c)
	if idx == -1 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}
