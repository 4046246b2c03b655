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
	"regexp"
	"strings"
)

// httpsToHttp downgrades an https scheme to http.
func httpsToHttp(u *ParsedUrl) {
	if strings.EqualFold(u.Scheme.String(), "https") {
		u.Scheme = "http"
	}
}

var wwwPrefixRe = regexp.MustCompile(`^www[0-9]*\.`)

// stripWww removes a leading "www", "www1", "www2", ... label from host.
func stripWww(u *ParsedUrl) {
	u.Host = u.Host.ReplaceAll(wwwPrefixRe, "")
}

// lowercasePath ASCII-lowercases the path slot.
func lowercasePath(u *ParsedUrl) { u.Path = u.Path.AsciiLower() }

// lowercaseQuery ASCII-lowercases the query slot.
func lowercaseQuery(u *ParsedUrl) { u.Query = u.Query.AsciiLower() }

// sessionIdParamRes are the whole-param patterns stripSessionIdsFromQuery
// checks. Each pattern describes a complete query param, so the query is
// split on '&' first and every part whole-matched; a match can never span
// a param boundary, and two session-id params sharing one '&' are both
// removed.
var sessionIdParamRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^jsessionid=[0-9a-z$]{10,}$`),
	regexp.MustCompile(`(?i)^sessionid=[0-9a-z]{16,}$`),
	regexp.MustCompile(`(?i)^phpsessid=[0-9a-z]{16,}$`),
	regexp.MustCompile(`(?i)^sid=[0-9a-z]{16,}$`),
	regexp.MustCompile(`(?i)^aspsessionid[a-z]{8}=[0-9a-z]{16,}$`),
}

var cfidRe = regexp.MustCompile(`(?i)^cfid=[0-9]+$`)
var cftokenRe = regexp.MustCompile(`(?i)^cftoken=[0-9a-z-]+$`)

// stripSessionIdsFromQuery removes session-id params (jsessionid,
// sessionid, phpsessid, sid, aspsessionidXXXXXXXX, or the cfid/cftoken
// pair) from the query, each matched as a standalone '&'-delimited param.
func stripSessionIdsFromQuery(u *ParsedUrl) {
	if u.Query.IsEmpty() {
		return
	}
	parts := strings.Split(u.Query.String(), "&")
	out := parts[:0]
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		isSessionId := false
		for _, re := range sessionIdParamRes {
			if re.MatchString(part) {
				isSessionId = true
				break
			}
		}
		if !isSessionId && cfidRe.MatchString(part) && i+1 < len(parts) && cftokenRe.MatchString(parts[i+1]) {
			isSessionId = true
			i++
		}
		if !isSessionId {
			out = append(out, part)
		}
	}
	u.Query = ByteString(strings.Join(out, "&"))
}

var aspxSuffixRe = regexp.MustCompile(`(?i)\.aspx$`)
var aspxSingleTokenSegmentRe = regexp.MustCompile(`^\([0-9a-z]{24}\)$`)
var aspxMultiTokenSegmentRe = regexp.MustCompile(`^\((?:[a-z]\([0-9a-z]{24}\))+\)$`)
var trailingJsessionidRe = regexp.MustCompile(`;jsessionid=[0-9a-z]{32}$`)

// stripSessionIdsFromPath removes ASP.NET's parenthesized path-segment
// session tokens (only from paths ending ".aspx") and, unconditionally,
// a trailing ";jsessionid=..." path parameter.
//
// A token only counts when it is a whole '/'-delimited segment, so the
// path is split on '/' and each segment whole-matched, the same technique
// stripSessionIdsFromQuery uses for its param boundaries.
func stripSessionIdsFromPath(u *ParsedUrl) {
	path := u.Path.String()
	if aspxSuffixRe.MatchString(path) {
		segments := strings.Split(path, "/")
		out := segments[:0]
		for _, seg := range segments {
			if aspxSingleTokenSegmentRe.MatchString(seg) || aspxMultiTokenSegmentRe.MatchString(seg) {
				continue
			}
			out = append(out, seg)
		}
		path = strings.Join(out, "/")
	}
	path = trailingJsessionidRe.ReplaceAllString(path, "")
	u.Path = ByteString(path)
}

var redundantLeadingAmpersandsRe = regexp.MustCompile(`^&+`)
var redundantTrailingAmpersandsRe = regexp.MustCompile(`&+$`)
var redundantInteriorAmpersandsRe = regexp.MustCompile(`&{2,}`)

// removeRedundantAmpersandsFromQuery strips leading/trailing '&' runs and
// collapses interior runs of consecutive '&' to a single separator.
func removeRedundantAmpersandsFromQuery(u *ParsedUrl) {
	q := u.Query.String()
	if !strings.Contains(q, "&") {
		return
	}
	q = redundantInteriorAmpersandsRe.ReplaceAllString(q, "&")
	q = redundantLeadingAmpersandsRe.ReplaceAllString(q, "")
	q = redundantTrailingAmpersandsRe.ReplaceAllString(q, "")
	u.Query = ByteString(q)
}

// stripTrailingSlashUnlessEmpty drops a trailing '/' from path, unless
// path is just "/" (which would otherwise become empty).
func stripTrailingSlashUnlessEmpty(u *ParsedUrl) {
	if u.Path.Len() > 1 && u.Path.At(u.Path.Len()-1) == '/' {
		u.Path = u.Path.Slice(0, u.Path.Len()-1)
	}
}

// omitQuestionMarkIfQueryEmpty clears the questionMark separator once the
// query it introduced has been emptied out by the rest of the pipeline.
func omitQuestionMarkIfQueryEmpty(u *ParsedUrl) {
	if u.Query.IsEmpty() {
		u.QuestionMark = ""
	}
}
