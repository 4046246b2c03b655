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

// Operation is a single named canonicalization step: a pure function over a
// ParsedUrl, mutating it in place. Expressing each step as a named value
// rather than an inline closure call lets a pipeline be inspected (its
// Name) and its steps tested individually.
type Operation struct {
	Name string
	Run  func(u *ParsedUrl)
}

// Pipeline is an ordered list of operations; Canonicalize runs them in
// sequence. Each named canonicalizer is inspectable data instead of a
// hard-coded method chain.
type Pipeline []Operation

// Canonicalize mutates u in place by running every operation in order.
func (p Pipeline) Canonicalize(u *ParsedUrl) {
	for _, op := range p {
		op.Run(u)
	}
}

func op(name string, fn func(u *ParsedUrl)) Operation {
	return Operation{Name: name, Run: fn}
}

// WHATWG is the browser-grade canonicalizer: syntactic normalization only,
// no semantic decoding. The operation order matters; several later steps
// assume the slot states earlier ones establish.
var WHATWG = Pipeline{
	op("removeLeadingTrailingJunk", removeLeadingTrailingJunk),
	op("removeTabsAndNewlines", removeTabsAndNewlines),
	op("lowercaseScheme", lowercaseScheme),
	op("elideDefaultPort", elideDefaultPort),
	op("cleanUpUserinfo", cleanUpUserinfo),
	op("twoSlashes", twoSlashes),
	op("normalizeIpAddress", normalizeIpAddress),
	op("punycodeSpecialHost", punycodeSpecialHost),
	op("pctEncodeWhatwg", pctEncodeWhatwg),
	op("fixBackslashes", fixBackslashes),
	op("leadingSlash", leadingSlash),
	op("normalizePathDots", normalizePathDots),
	op("emptyPathToSlash", emptyPathToSlash),
}

// SEMANTIC_PRECISE canonicalizes toward url-equivalence: it decodes and
// re-encodes consistently, sorts query params, and drops userinfo.
var SEMANTIC_PRECISE = Pipeline{
	op("removeLeadingTrailingJunk", removeLeadingTrailingJunk),
	op("defaultSchemeHttp", defaultSchemeHttp),
	op("removeTabsAndNewlines", removeTabsAndNewlines),
	op("lowercaseScheme", lowercaseScheme),
	op("elideDefaultPort", elideDefaultPort),
	op("cleanUpUserinfo", cleanUpUserinfo),
	op("twoSlashes", twoSlashes),
	op("pctDecodeRepeatedlyExceptQuery", pctDecodeRepeatedlyExceptQuery),
	op("normalizeIpAddress", normalizeIpAddress),
	op("fixHostDots", fixHostDots),
	op("punycodeSpecialHost", punycodeSpecialHost),
	op("removeUserinfo", removeUserinfo),
	op("lessDumbPctEncode", lessDumbPctEncode),
	op("lessDumbPctRecodeQuery", lessDumbPctRecodeQuery),
	op("fixBackslashes", fixBackslashes),
	op("leadingSlash", leadingSlash),
	op("normalizePathDots", normalizePathDots),
	op("collapseConsecutiveSlashes", collapseConsecutiveSlashes),
	op("emptyPathToSlash", emptyPathToSlash),
	op("alphaReorderQuery", alphaReorderQuery),
}

// SEMANTIC is an alias of SEMANTIC_PRECISE, kept as its own name so
// callers can select canonicalizers by any of the four conventional names.
var SEMANTIC = SEMANTIC_PRECISE

// AGGRESSIVE runs SEMANTIC_PRECISE, then the lossy, deduplication-biased
// additions: scheme/host/session-id normalization aimed at collapsing
// near-duplicate URLs onto one canonical form.
var AGGRESSIVE = append(append(Pipeline{}, SEMANTIC_PRECISE...), Pipeline{
	op("httpsToHttp", httpsToHttp),
	op("stripWww", stripWww),
	op("lowercasePath", lowercasePath),
	op("lowercaseQuery", lowercaseQuery),
	op("stripSessionIdsFromQuery", stripSessionIdsFromQuery),
	op("stripSessionIdsFromPath", stripSessionIdsFromPath),
	op("stripTrailingSlashUnlessEmpty", stripTrailingSlashUnlessEmpty),
	op("removeRedundantAmpersandsFromQuery", removeRedundantAmpersandsFromQuery),
	op("omitQuestionMarkIfQueryEmpty", omitQuestionMarkIfQueryEmpty),
	op("alphaReorderQuery", alphaReorderQuery),
}...)
