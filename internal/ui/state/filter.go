package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterChoices returns the choices matching the supplied query, falling back
// to a case-insensitive substring scan when fuzzy matching finds nothing.
func FilterChoices(choices []string, query string) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneItems(choices)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, choices)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]string, 0, len(matches))
		for idx, choice := range choices {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, choice)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]string, 0, len(choices))
	for _, choice := range choices {
		if strings.Contains(strings.ToLower(choice), lower) {
			filtered = append(filtered, choice)
		}
	}
	return filtered
}
