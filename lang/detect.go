package lang

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

type languageTag struct {
	Value    string
	Priority float64
}

var qualityValueRegex = regexp.MustCompile(`^q=([01](?:\.[0-9]{1,3})?)$`)

// parseAcceptLanguage parses an "Accept-Language" header value, taking the
// quality values into account. The result is sorted by priority, then by
// specificity ("fr-FR" before "fr" before "*").
//
//	"fr , fr-FR;q=0.8, en-US ;q=0.5, *;q=0.3"
//
// returns
//
//	[{fr 1} {fr-FR 0.8} {en-US 0.5} {* 0.3}]
func parseAcceptLanguage(header string) []languageTag {
	h := strings.TrimSpace(header)
	if h == "" {
		return []languageTag{}
	}

	parts := strings.Split(h, ",")
	tags := make([]languageTag, 0, len(parts))
	for _, part := range parts {
		tag := languageTag{Priority: 1}
		value, params, hasParams := strings.Cut(part, ";")
		if hasParams {
			// Priority set to 0 if the quality value cannot be parsed
			tag.Priority = 0
			if sub := qualityValueRegex.FindStringSubmatch(strings.TrimSpace(params)); len(sub) > 1 {
				if p, err := strconv.ParseFloat(sub[1], 64); err == nil {
					tag.Priority = p
				}
			}
		}
		tag.Value = strings.TrimSpace(value)
		if tag.Value == "" {
			continue
		}
		tags = append(tags, tag)
	}

	sort.Stable(byPriority(tags))
	return tags
}

type byPriority []languageTag

func (s byPriority) Len() int {
	return len(s)
}
func (s byPriority) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
func (s byPriority) Less(i, j int) bool {
	if s[j].Priority == s[i].Priority {
		return specificity(s[j]) < specificity(s[i])
	}

	return s[j].Priority < s[i].Priority
}

func specificity(tag languageTag) int {
	return strings.Count(tag.Value, "-") - strings.Count(tag.Value, "*")
}
