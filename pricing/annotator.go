// Package pricing derives the "extras" surcharge from a product's
// free-text notes and computes display prices.
//
// Extraction is a best-effort heuristic over hand-authored catalog text.
// It can misfire on notes that contain unrelated numbers; that is
// documented behavior, not a defect to patch around.
package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// PendingPriceLabel is shown for a variant option whose price is absent.
const PendingPriceLabel = "TBD"

// Patterns tried per note, in priority order. The first submatch of the
// first pattern that matches, in the first note where any pattern
// matches, is the surcharge.
var surchargePatterns = []*regexp.Regexp{
	regexp.MustCompile(`=?\s*(\d+)`),
	regexp.MustCompile(`(?i)for\s+(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s+per`),
}

// ExtractSurcharge scans localized notes in order and returns the first
// extracted amount, or 0 when no note matches any pattern.
func ExtractSurcharge(notes []string) int {
	for _, note := range notes {
		for _, pattern := range surchargePatterns {
			m := pattern.FindStringSubmatch(note)
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return n
		}
	}
	return 0
}

// DisplayPrice computes the amount shown for an option. The surcharge is
// added only while the extras toggle is active and the surcharge is
// strictly positive.
func DisplayPrice(basePrice float64, surcharge int, extrasActive bool) float64 {
	if extrasActive && surcharge > 0 {
		return basePrice + float64(surcharge)
	}
	return basePrice
}

// markers that make a note look price-bearing to the eligibility gate.
var extrasMarkers = []string{"=", "إضافات", "Extra", "for"}

var anyDigit = regexp.MustCompile(`\d`)

// ExtrasEligible reports whether the extras toggle should be offered:
// some note must carry a currency-like marker or a digit, and extraction
// must actually yield a positive surcharge.
func ExtrasEligible(notes []string) bool {
	if ExtractSurcharge(notes) <= 0 {
		return false
	}
	for _, note := range notes {
		for _, marker := range extrasMarkers {
			if strings.Contains(note, marker) {
				return true
			}
		}
		if anyDigit.MatchString(note) {
			return true
		}
	}
	return false
}
