package locale_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Salmayasser12/Sweet-Corner/locale"
	"github.com/Salmayasser12/Sweet-Corner/models"
)

// GetTranslations godoc
// @Summary Get translations for a language
// @Description Resolve the full translation table for a language, plus the text direction it drives.
// @Tags Storefront - Locale
// @Produce json
// @Param lang path string true "Language (en | ar)"
// @Success 200 {object} models.ApiResponse "Translations fetched successfully"
// @Router /store/locale/{lang} [get]
func GetTranslations(c *gin.Context) {
	loc := locale.New(locale.ParseLanguage(c.Param("lang")))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Translations fetched successfully", gin.H{
		"language": loc.Language,
		"is_rtl":   loc.IsRTL,
		"strings":  loc.Table(),
	}))
}
