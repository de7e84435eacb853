package routes

import (
	"github.com/gin-gonic/gin"

	store_category "github.com/Salmayasser12/Sweet-Corner/controllers/storefront/category_controller"
	store_locale "github.com/Salmayasser12/Sweet-Corner/controllers/storefront/locale_controller"
	store_product "github.com/Salmayasser12/Sweet-Corner/controllers/storefront/product_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetMenuProducts)    // Menu list with filters
		products.GET("/:id", store_product.GetProductByID) // Single product
	}

	// Category routes
	store.GET("/categories", store_category.GetCategories)

	// Locale routes
	store.GET("/locale/:lang", store_locale.GetTranslations)
}
