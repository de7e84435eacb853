// catalog-lint validates a catalog document offline before it is
// published: schema invariants, then a per-category summary.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Salmayasser12/Sweet-Corner/menu"
	"github.com/Salmayasser12/Sweet-Corner/models"
	"github.com/Salmayasser12/Sweet-Corner/pricing"
)

func main() {
	path := "data/products.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌ read %s: %v", path, err)
	}

	var catalog []models.Product
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Fatalf("❌ parse %s: %v", path, err)
	}
	if err := models.ValidateCatalog(catalog); err != nil {
		log.Fatalf("❌ invalid catalog: %v", err)
	}

	counts := menu.CountByCategory(catalog)
	fmt.Printf("✅ %s: %d products\n", path, counts[models.CategoryAll])
	for _, c := range models.Categories {
		fmt.Printf("   %-14s %d\n", c, counts[c])
	}

	// Flag notes that mention extras but yield no surcharge, so
	// maintainers can spot text the extractor cannot read.
	for _, p := range catalog {
		if p.Notes == nil {
			continue
		}
		for _, lang := range []string{"en", "ar"} {
			notes := p.Notes.Resolve(lang)
			if len(notes) == 0 || pricing.ExtrasEligible(notes) {
				continue
			}
			for _, note := range notes {
				if strings.Contains(note, "Extra") || strings.Contains(note, "إضافات") {
					fmt.Printf("⚠️  product %d (%s): note mentions extras but no surcharge extracted: %q\n", p.ID, lang, note)
					break
				}
			}
		}
	}
}
