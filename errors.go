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

import "fmt"

// InvariantError indicates the parser's own fixed grammar failed to match
// text it is supposed to match unconditionally (for example, the
// authority-splitting grammar not matching after the pathish grammar has
// already confirmed an authority is present). This is a bug in the parser,
// not a property of the caller's input: every other kind of malformed input
// (bad percent escapes, unparseable IPv4, missing components) is absorbed
// silently and never reaches this type. Parse's hand-written scanners have
// no branch where their grammar fails to match, so no code path in the
// package raises it; raiseInvariant is the helper that would.
type InvariantError struct {
	// Rule names the grammar rule that failed to match.
	Rule string
	// Input is the text the rule was matched against.
	Input string
}

// Error formats a diagnostic including the offending input, so a panic
// carrying this type is debuggable from a crash report alone.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("urlcanon: internal invariant violated: rule %q did not match %q", e.Rule, e.Input)
}

// raiseInvariant panics with an *InvariantError. Callers use this only for
// conditions the parser's own fixed grammar guarantees can't happen; it must
// never be reachable from caller-supplied input alone.
func raiseInvariant(rule, input string) {
	panic(&InvariantError{Rule: rule, Input: input})
}
