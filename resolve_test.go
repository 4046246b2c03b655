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

// Resolve inherits scheme/userinfo/host/port from the base but never the
// base's slashes: a relative reference that had no "//" of its own stays
// without one, so the raw merged record reads "http:example.com/..." until
// a canonicalizer or the caller puts an authority separator back. The
// tests below assert that raw record, not a cleaned-up rendering.

func TestResolveRelativePath(t *testing.T) {
	base := Parse("http://example.com/a/b/c")
	rel := Parse("d/e")
	got := Resolve(base, rel).String()
	want := "http:example.com/a/b/d/e"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveAbsolutePath(t *testing.T) {
	base := Parse("http://example.com/a/b/c")
	rel := Parse("/x/y")
	got := Resolve(base, rel).String()
	want := "http:example.com/x/y"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// A network-path reference ("//host/...") keeps its own authority and only
// takes the base's scheme — and just the scheme, not the colon, since the
// relative record never had one.
func TestResolveNetworkPathReference(t *testing.T) {
	base := Parse("http://example.com/a/b/c")
	rel := Parse("//other.com/x")
	got := Resolve(base, rel).String()
	want := "http//other.com/x"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveCrossSchemeAbsolute(t *testing.T) {
	base := Parse("http://example.com/a/b/c")
	rel := Parse("mailto:foo@example.com")
	got := Resolve(base, rel).String()
	want := "mailto:foo@example.com"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// A same-scheme reference without slashes parses its first path segment
// into the host slot ("http:d/e" has host "d", path "/e"); resolution
// replaces that host with the base's and keeps the path.
func TestResolveSameSchemeExplicitNoSlashes(t *testing.T) {
	base := Parse("http://example.com/a/b/c")
	rel := Parse("http:d/e")
	got := Resolve(base, rel).String()
	want := "http:example.com/e"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// When the working path is empty but the relative reference parsed a lone
// segment into its host slot ("http:d"), that segment degrades back into
// the path before the dirname merge.
func TestResolveHostSlotDegradesToPath(t *testing.T) {
	base := Parse("http://example.com/a/b/c")
	rel := Parse("http:d")
	got := Resolve(base, rel).String()
	want := "http:example.com/a/b/d"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveEmptyRelative(t *testing.T) {
	base := Parse("http://example.com/a/b/c")
	rel := Parse("")
	got := Resolve(base, rel).String()
	want := "http:example.com"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveBaseWithoutSlashInPath(t *testing.T) {
	base := Parse("mailto:box@example.com")
	rel := Parse("other")
	got := Resolve(base, rel).String()
	want := "mailto:other"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	base := Parse("http://example.com/a/b/c")
	rel := Parse("d/e")
	_ = Resolve(base, rel)
	if base.String() != "http://example.com/a/b/c" {
		t.Errorf("base mutated: %q", base.String())
	}
	if rel.String() != "d/e" {
		t.Errorf("relative mutated: %q", rel.String())
	}
}
