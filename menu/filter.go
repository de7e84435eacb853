// Package menu implements the storefront menu logic: the visible subset
// of the catalog for a category + search selection, per-category counts,
// and search-match highlighting of display names.
package menu

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Salmayasser12/Sweet-Corner/models"
)

// foldText case-folds a string for comparison. Folding is Unicode-aware:
// a no-op for Arabic script, but it must not corrupt multi-byte runes.
// A Caser is stateful, so each call gets its own.
func foldText(s string) string {
	return cases.Fold().String(s)
}

// CountByCategory groups the catalog by category. Every real category is
// present in the result, zero-valued when empty; the synthetic All entry
// holds the total product count.
func CountByCategory(products []models.Product) map[string]int {
	counts := make(map[string]int, len(models.Categories)+1)
	for _, c := range models.Categories {
		counts[c] = 0
	}
	for _, p := range products {
		counts[p.Category]++
	}
	counts[models.CategoryAll] = len(products)
	return counts
}

// Filter returns the products visible for the selected category and raw
// search query. A product passes iff the category matches (or All is
// selected) and, when the trimmed query is non-empty, the folded query is
// a substring of the folded English or Arabic name. Catalog order is
// preserved; an unknown category yields an empty subset.
func Filter(products []models.Product, selectedCategory, searchQuery string) []models.Product {
	var folded string
	if strings.TrimSpace(searchQuery) != "" {
		folded = foldText(searchQuery)
	}

	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if selectedCategory != models.CategoryAll && p.Category != selectedCategory {
			continue
		}
		if folded != "" &&
			!strings.Contains(foldText(p.Name.En), folded) &&
			!strings.Contains(foldText(p.Name.Ar), folded) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}
