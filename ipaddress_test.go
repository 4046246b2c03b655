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

func TestParseIPv4Forms(t *testing.T) {
	cases := []struct {
		host string
		want int64
	}{
		{"192.168.0.1", 0xC0A80001},
		{"0xC0.0xA8.0x00.0x01", 0xC0A80001},
		{"0300.0250.0.1", 0xC0A80001},
		{"3232235521", 0xC0A80001},
		{"192.168.1", 0xC0A80001},
		{"192.11010049", 0xC0A80001},
		{"1.2.3.", 0x01020003},
		{"0x.0x.0x.0x", 0},
		{"", noIPv4},
		{"example.com", noIPv4},
		{"1.2.3.4.5", noIPv4},
		{"256.1.1.1", noIPv4},
		{"1.2.3.256", noIPv4},
		{"1..2.3", noIPv4},
		{".1.2.3", noIPv4},
		{"1.2.3..", noIPv4},
		{".", noIPv4},
	}
	for _, c := range cases {
		got := parseIPv4(c.host)
		if got != c.want {
			t.Errorf("parseIPv4(%q) = %d, want %d", c.host, got, c.want)
		}
	}
}

func TestFormatIPv4(t *testing.T) {
	got := formatIPv4(0xC0A80001)
	want := "192.168.0.1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
