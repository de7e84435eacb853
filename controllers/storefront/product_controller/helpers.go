package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Salmayasser12/Sweet-Corner/locale"
	"github.com/Salmayasser12/Sweet-Corner/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// requestLocale builds the locale for a request from the lang query param.
func requestLocale(c *gin.Context) locale.Locale {
	return locale.New(locale.ParseLanguage(c.Query("lang")))
}

// boolQuery reads a query param as a toggle flag.
func boolQuery(c *gin.Context, name string) bool {
	v := c.Query(name)
	return v == "true" || v == "1"
}

// minPrice returns the lowest base price across a product's options,
// for the "starting from" line on menu cards. Options are never empty.
func minPrice(options []models.ProductOption) float64 {
	min := options[0].Price
	for _, o := range options[1:] {
		if o.Price < min {
			min = o.Price
		}
	}
	return min
}

// formatPrice renders a price without trailing zeros, the way the menu
// displays whole-pound amounts.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
