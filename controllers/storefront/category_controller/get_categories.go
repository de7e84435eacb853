package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Salmayasser12/Sweet-Corner/catalog"
	"github.com/Salmayasser12/Sweet-Corner/locale"
	"github.com/Salmayasser12/Sweet-Corner/menu"
	"github.com/Salmayasser12/Sweet-Corner/models"
)

// categoryDefs maps the sidebar entries, All first, to translation keys.
var categoryDefs = []struct {
	ID  string
	Key string
}{
	{models.CategoryAll, "category.all"},
	{"Cookies", "category.cookies"},
	{"Mini Cookies", "category.miniCookies"},
	{"Cookies Cakes", "category.cookiesCakes"},
	{"Tarts", "category.tarts"},
	{"Brownies", "category.brownies"},
	{"Bakeries", "category.bakeries"},
}

// GetCategories godoc
// @Summary Get menu categories
// @Description List the fixed category set with localized labels and live product counts. The synthetic All entry counts the whole catalog.
// @Tags Storefront - Categories
// @Produce json
// @Param lang query string false "Display language (en | ar)" default(ar)
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	loc := locale.New(locale.ParseLanguage(c.Query("lang")))
	counts := menu.CountByCategory(catalog.Products())

	categories := make([]models.CategoryInfo, 0, len(categoryDefs))
	for _, def := range categoryDefs {
		categories = append(categories, models.CategoryInfo{
			ID:    def.ID,
			Label: loc.T(def.Key),
			Count: counts[def.ID],
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
