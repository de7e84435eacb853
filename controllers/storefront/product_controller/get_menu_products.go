package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Salmayasser12/Sweet-Corner/catalog"
	"github.com/Salmayasser12/Sweet-Corner/menu"
	"github.com/Salmayasser12/Sweet-Corner/models"
)

// GetMenuProducts godoc
// @Summary Get menu products
// @Description Retrieve the visible menu subset for a category and search query, with per-category counts and search-match highlighting.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category filter" default(All)
// @Param q query string false "Search query (matches product name, both languages)"
// @Param lang query string false "Display language (en | ar)" default(ar)
// @Success 200 {object} models.ApiResponse "Menu products fetched successfully"
// @Router /store/products [get]
func GetMenuProducts(c *gin.Context) {
	loc := requestLocale(c)
	selectedCategory := c.DefaultQuery("category", models.CategoryAll)
	searchQuery := c.Query("q")

	products := catalog.Products()
	counts := menu.CountByCategory(products)
	visible := menu.Filter(products, selectedCategory, searchQuery)

	items := make([]models.MenuProduct, 0, len(visible))
	for _, p := range visible {
		name := p.Name.Resolve(string(loc.Language))
		items = append(items, models.MenuProduct{
			ID:            p.ID,
			Category:      p.Category,
			Name:          name,
			NameSegments:  menu.Highlight(name, searchQuery),
			ImageURL:      p.ImageURL,
			StartingFrom:  minPrice(p.Options),
			StartingLabel: loc.T("menu.startingFrom"),
			CurrencyLabel: loc.T("menu.egp"),
		})
	}

	resp := models.MenuResponse{
		Products:  items,
		Counts:    counts,
		Total:     counts[models.CategoryAll],
		IsLoading: catalog.IsLoading(),
	}
	if len(items) == 0 && !resp.IsLoading {
		resp.EmptyTitle = loc.T("empty.title")
		resp.EmptySubtitle = loc.T("empty.subtitle")
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu products fetched successfully", resp))
}
