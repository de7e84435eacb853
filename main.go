// @title Sweet Corner Menu API
// @version 1.0
// @description Sweet Corner storefront menu API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Salmayasser12/Sweet-Corner/catalog"
	"github.com/Salmayasser12/Sweet-Corner/config"
	"github.com/Salmayasser12/Sweet-Corner/middleware"
	"github.com/Salmayasser12/Sweet-Corner/routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	rateLimitEnabled := config.GetEnv("RATE_LIMIT_DISABLED", "") != "true"
	if rateLimitEnabled {
		// Redis connection (rate limiter state)
		config.ConnectRedis()
	}

	// One-time catalog load; requests arriving before it completes see
	// an empty catalog with the loading flag set.
	catalog.LoadAsync(context.Background())

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"X-Request-ID"},
	}

	if config.GetEnv("APP_ENV", "") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	if rateLimitEnabled {
		api.Use(middleware.RateLimiter(100, time.Minute))
	}
	routes.SetupStorefrontRoutes(api)

	port := config.GetEnv("PORT", "8081")
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
