package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Salmayasser12/Sweet-Corner/catalog"
	"github.com/Salmayasser12/Sweet-Corner/locale"
	"github.com/Salmayasser12/Sweet-Corner/models"
	"github.com/Salmayasser12/Sweet-Corner/pricing"
)

// GetProductByID godoc
// @Summary Get single product details
// @Description Get product detail with price options. The extras toggle adds the note-derived surcharge to every option; the chocolate toggle exposes the alternate variant list.
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Param lang query string false "Display language (en | ar)" default(ar)
// @Param extras query bool false "Show prices with extras surcharge"
// @Param chocolate query bool false "Show extra chocolate variant prices"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	product, ok := findProduct(catalog.Products(), id)
	if !ok {
		resp := models.ErrorResponse(c, "Product not found")
		resp.Data = gin.H{"menu_path": "/api/v1/store/products"}
		c.JSON(http.StatusNotFound, resp)
		return
	}

	loc := requestLocale(c)
	lang := string(loc.Language)

	notes := product.Notes.Resolve(lang)
	surcharge := pricing.ExtractSurcharge(notes)
	extrasAvailable := pricing.ExtrasEligible(notes)
	extrasActive := extrasAvailable && boolQuery(c, "extras")

	options := make([]models.PricedOption, 0, len(product.Options))
	for _, o := range product.Options {
		options = append(options, models.PricedOption{
			Label:         o.Label,
			BasePrice:     o.Price,
			DisplayPrice:  pricing.DisplayPrice(o.Price, surcharge, extrasActive),
			CurrencyLabel: loc.T("menu.egp"),
		})
	}

	detail := models.ProductDetail{
		ID:                product.ID,
		Category:          product.Category,
		Name:              product.Name.Resolve(lang),
		Description:       product.Description.Resolve(lang),
		ImageURL:          product.ImageURL,
		Options:           options,
		Notes:             notes,
		Surcharge:         surcharge,
		ExtrasAvailable:   extrasAvailable,
		ExtrasActive:      extrasActive,
		HasExtraChocolate: len(product.WithExtraChocolate) > 0,
	}
	if len(notes) == 0 {
		detail.NoNotesMessage = loc.T("modal.noNotes")
	}
	if extrasAvailable {
		if extrasActive {
			detail.ExtrasToggleLabel = loc.T("modal.basePriceButton")
		} else {
			detail.ExtrasToggleLabel = loc.T("modal.extrasButton")
		}
	}

	if detail.HasExtraChocolate {
		showChocolate := boolQuery(c, "chocolate")
		detail.ChocolateToggleLabel = chocolateToggleLabel(loc, showChocolate)
		if showChocolate {
			detail.ExtraChocolate = chocolateOptions(product.WithExtraChocolate, loc)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}

func findProduct(products []models.Product, id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// chocolateOptions renders the alternate variant list. An option without
// a price shows the pending placeholder instead of a number.
func chocolateOptions(variants []models.ExtraOption, loc locale.Locale) []models.ExtraChocolateOption {
	out := make([]models.ExtraChocolateOption, 0, len(variants))
	for _, v := range variants {
		display := pricing.PendingPriceLabel
		if v.Price != nil {
			display = formatPrice(*v.Price) + " " + loc.T("menu.egp")
		}
		out = append(out, models.ExtraChocolateOption{Label: v.Label, Display: display})
	}
	return out
}

func chocolateToggleLabel(loc locale.Locale, showing bool) string {
	if loc.Language == locale.Arabic {
		if showing {
			return "إخفاء أسعار الشوكولاتة الإضافية"
		}
		return "مع شوكولاتة إضافية"
	}
	if showing {
		return "Hide extra chocolate prices"
	}
	return "With extra chocolate"
}
