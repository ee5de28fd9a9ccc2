package review

import "strings"

// Prefix table scanned for title normalization. Order matters: longer
// variants of a prefix must come before their shorter form.
var titlePrefixes = []string{
	"api proposal:",
	"[api proposal]",
	"api:",
	"[api]",
	"proposal:",
	"[proposal]",
	"feature:",
	"feature request:",
	"[feature]",
	"[feature request]",
}

// NormalizeTitle strips review-request prefixes from an issue title.
// The table is rescanned until no prefix matches, so stacked prefixes
// ("[api] Proposal: Foo") collapse regardless of their order.
func NormalizeTitle(title string) string {
	for {
		stripped := false
		for _, prefix := range titlePrefixes {
			if len(title) >= len(prefix) && strings.EqualFold(title[:len(prefix)], prefix) {
				title = strings.TrimSpace(title[len(prefix):])
				stripped = true
			}
		}
		if !stripped {
			return title
		}
	}
}
