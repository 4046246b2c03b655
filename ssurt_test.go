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

func TestReverseHost(t *testing.T) {
	got := reverseHost("x,y.b.c")
	want := "c,b,x.y,"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Reversing a comma-free host, dropping the trailing ',', and reversing
// again gives the host's dot segments in reverse order: the second pass
// sees a single comma-joined segment and only turns its commas into dots.
func TestReverseHostTwiceReversesSegmentOrder(t *testing.T) {
	cases := map[string]string{
		"example.com":     "com.example",
		"www.example.com": "com.example.www",
		"a.b.c.d":         "d.c.b.a",
	}
	for h, want := range cases {
		once := reverseHost(h)
		trimmed := once[:len(once)-1] // drop trailing ','
		twice := reverseHost(trimmed)
		twiceTrimmed := twice[:len(twice)-1]
		if twiceTrimmed != want {
			t.Errorf("reverseHost(reverseHost(%q)) = %q, want %q", h, twiceTrimmed, want)
		}
	}
}

func TestSsurtFieldOrder(t *testing.T) {
	u := Parse("http://www.example.com:80/foo")
	got := u.Ssurt()
	want := "com,example,www,//80:http:/foo"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSsurtHostIPv4Unchanged(t *testing.T) {
	if got := ssurtHost("192.168.0.1"); got != "192.168.0.1" {
		t.Errorf("got %q", got)
	}
}

func TestSsurtHostIPv6Unchanged(t *testing.T) {
	if got := ssurtHost("[::1]"); got != "[::1]" {
		t.Errorf("got %q", got)
	}
}
