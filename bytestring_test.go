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

func TestByteStringPreservesFullByteRange(t *testing.T) {
	raw := string([]byte{0x00, 0x7F, 0x80, 0xFF, 'a'})
	b := ByteString(raw)
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	if b.String() != raw {
		t.Fatalf("String() did not round-trip raw bytes")
	}
}

func TestByteStringAsciiLower(t *testing.T) {
	b := ByteString("HTTP://Example.COM/\xFF")
	got := b.AsciiLower().String()
	want := "http://example.com/\xFF"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestByteStringAsciiLowerSameValueWhenUnchanged(t *testing.T) {
	b := ByteString("already-lower")
	if b.AsciiLower() != b {
		t.Errorf("AsciiLower should return the same value when nothing changes")
	}
}

func TestByteStringConcat(t *testing.T) {
	got := ByteString("a").Concat(ByteString("b"), ByteString("c"))
	if got != "abc" {
		t.Errorf("got %q", got)
	}
}

func TestByteStringSplitJoin(t *testing.T) {
	parts := ByteString("a&b&c").Split("&")
	if len(parts) != 3 || parts[0] != "a" || parts[2] != "c" {
		t.Fatalf("unexpected split: %+v", parts)
	}
	joined := JoinByteStrings(parts, "&")
	if joined != "a&b&c" {
		t.Errorf("got %q", joined)
	}
}
