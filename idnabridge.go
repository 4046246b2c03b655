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
	"strings"

	"golang.org/x/net/idna"
)

// idnaProfile is a lenient, non-transitional lookup profile: it accepts
// already-ASCII labels and doesn't reject on STD3 rule violations, since
// this package never rejects input.
var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.VerifyDNSLength(false),
	idna.StrictDomainName(false),
)

// punycodeHost converts host to its ASCII/Punycode form the way WHATWG
// host processing requires. A bracketed IPv6 literal, an IPv4 literal, or
// a host idna.ToASCII can't encode is returned unchanged rather than
// erroring; canonicalizers never fail, they fall back to the verbatim
// input.
func punycodeHost(host string) string {
	if host == "" || strings.HasPrefix(host, "[") {
		return host
	}
	if parseIPv4(host) != noIPv4 {
		return host
	}
	ascii, err := idnaProfile.ToASCII(host)
	if err != nil || ascii == "" {
		return host
	}
	return ascii
}
