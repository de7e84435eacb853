package models

import "fmt"

// ═══════════════════════════════════════════════════════════
// Catalog Types
// ═══════════════════════════════════════════════════════════

// LocalizedText holds both language variants of a display string.
// Both fields are required; the catalog never ships partial localization.
type LocalizedText struct {
	En string `json:"en" binding:"required"`
	Ar string `json:"ar" binding:"required"`
}

// Resolve picks the variant for a language code ("en" or "ar").
func (t LocalizedText) Resolve(lang string) string {
	if lang == "en" {
		return t.En
	}
	return t.Ar
}

// LocalizedNotes holds free-text annotations per language.
// Order is significant for display and for surcharge extraction.
type LocalizedNotes struct {
	En []string `json:"en"`
	Ar []string `json:"ar"`
}

// Resolve picks the notes for a language code. Nil-safe.
func (n *LocalizedNotes) Resolve(lang string) []string {
	if n == nil {
		return nil
	}
	if lang == "en" {
		return n.En
	}
	return n.Ar
}

// ProductOption is one purchasable variant of a product.
type ProductOption struct {
	Label    string  `json:"label"`
	Price    float64 `json:"price" binding:"min=0"`
	Currency string  `json:"currency"`
}

// ExtraOption is an option on an alternate priced variant list.
// Price may be absent while the price is still pending.
type ExtraOption struct {
	Label    string   `json:"label"`
	Price    *float64 `json:"price,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// Product is a catalog entry. The catalog is read-only for the lifetime
// of the process; nothing mutates a Product after load.
type Product struct {
	ID                 int             `json:"id"`
	Category           string          `json:"category"`
	Name               LocalizedText   `json:"name"`
	Description        LocalizedText   `json:"description"`
	ImageURL           string          `json:"imageUrl"`
	Options            []ProductOption `json:"options" binding:"required"`
	Notes              *LocalizedNotes `json:"notes,omitempty"`
	WithExtraChocolate []ExtraOption   `json:"withExtraChocolate,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// Categories
// ═══════════════════════════════════════════════════════════

// CategoryAll is the synthetic filter value meaning "no category filter".
// It is never a real product's category.
const CategoryAll = "All"

// Categories is the fixed set of real product categories.
var Categories = []string{
	"Cookies",
	"Mini Cookies",
	"Cookies Cakes",
	"Tarts",
	"Brownies",
	"Bakeries",
}

// KnownCategory reports whether c is one of the real categories.
func KnownCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Catalog Validation
// ═══════════════════════════════════════════════════════════

// ValidateCatalog checks the catalog invariants: unique ids, known
// categories, non-empty option lists, both name and description variants.
func ValidateCatalog(products []Product) error {
	seen := make(map[int]bool, len(products))
	for i, p := range products {
		if seen[p.ID] {
			return fmt.Errorf("product %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true

		if !KnownCategory(p.Category) {
			return fmt.Errorf("product %d: unknown category %q", p.ID, p.Category)
		}
		if len(p.Options) == 0 {
			return fmt.Errorf("product %d: no options", p.ID)
		}
		if p.Name.En == "" || p.Name.Ar == "" {
			return fmt.Errorf("product %d: name must have both language variants", p.ID)
		}
		if p.Description.En == "" || p.Description.Ar == "" {
			return fmt.Errorf("product %d: description must have both language variants", p.ID)
		}
		for j, o := range p.Options {
			if o.Price < 0 {
				return fmt.Errorf("product %d: option %d has negative price", p.ID, j)
			}
		}
	}
	return nil
}
