package grid

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterByLabel narrows a catalog to the items whose labels match the query.
// Matching is fuzzy with a case-insensitive substring fallback, so short
// queries behave predictably. An empty query returns the catalog unchanged.
// The label callback resolves display labels for items; labels are not part
// of the catalog itself.
func FilterByLabel(c Catalog, query string, label func(Item) string) Catalog {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || label == nil {
		return c
	}
	labels := make([]string, len(c.items))
	for i, item := range c.items {
		labels[i] = label(item)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matches))
		for idx, item := range c.items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) > 0 {
			return catalogOf(filtered)
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(c.items))
	for i, item := range c.items {
		if strings.Contains(strings.ToLower(labels[i]), lower) {
			filtered = append(filtered, item)
		}
	}
	return catalogOf(filtered)
}
