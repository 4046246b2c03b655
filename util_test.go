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

func TestIsAsciiLetter(t *testing.T) {
	for _, b := range []byte{'a', 'z', 'A', 'Z'} {
		if !isAsciiLetter(b) {
			t.Errorf("%q should be a letter", b)
		}
	}
	for _, b := range []byte{'0', '9', ' ', '-', 0xFF} {
		if isAsciiLetter(b) {
			t.Errorf("%q should not be a letter", b)
		}
	}
}

func TestIsC0OrSpace(t *testing.T) {
	for _, b := range []byte{0x00, 0x09, 0x20} {
		if !isC0OrSpace(b) {
			t.Errorf("%#x should be C0-or-space", b)
		}
	}
	for _, b := range []byte{0x21, 'a', 0xFF} {
		if isC0OrSpace(b) {
			t.Errorf("%#x should not be C0-or-space", b)
		}
	}
}

func TestIsTabOrNewline(t *testing.T) {
	for _, b := range []byte{'\r', '\n', '\t'} {
		if !isTabOrNewline(b) {
			t.Errorf("%q should be tab-or-newline", b)
		}
	}
	for _, b := range []byte{' ', 'a', 0x00} {
		if isTabOrNewline(b) {
			t.Errorf("%q should not be tab-or-newline", b)
		}
	}
}

func TestStripTabsAndNewlinesStr(t *testing.T) {
	got := stripTabsAndNewlinesStr("a\tb\nc\rd")
	want := "abcd"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripTabsAndNewlinesStrNoOp(t *testing.T) {
	s := "plain"
	if stripTabsAndNewlinesStr(s) != s {
		t.Errorf("should return input string unchanged")
	}
}

func TestStripTabsAndNewlines(t *testing.T) {
	got := stripTabsAndNewlines(ByteString("a\tb\nc")).String()
	want := "abc"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
