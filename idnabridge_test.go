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

import "testing"

func TestPunycodeHostAsciiUnchanged(t *testing.T) {
	got := punycodeHost("example.com")
	want := "example.com"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPunycodeHostLowercases(t *testing.T) {
	got := punycodeHost("EXAMPLE.COM")
	want := "example.com"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPunycodeHostUnicodeLabel(t *testing.T) {
	got := punycodeHost("münchen.de")
	want := "xn--mnchen-3ya.de"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPunycodeHostEmptyUnchanged(t *testing.T) {
	if got := punycodeHost(""); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestPunycodeHostBracketedIPv6Unchanged(t *testing.T) {
	got := punycodeHost("[::1]")
	want := "[::1]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPunycodeHostIPv4Unchanged(t *testing.T) {
	got := punycodeHost("192.168.0.1")
	want := "192.168.0.1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
