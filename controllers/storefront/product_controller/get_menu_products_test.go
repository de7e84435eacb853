package product_controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Salmayasser12/Sweet-Corner/catalog"
	"github.com/Salmayasser12/Sweet-Corner/models"
	"github.com/Salmayasser12/Sweet-Corner/routes"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupStorefrontRoutes(router.Group("/api/v1"))
	return router
}

func fixtureCatalog() []models.Product {
	singleWithChocolate := 85.0
	return []models.Product{
		{
			ID:          1,
			Category:    "Cookies",
			Name:        models.LocalizedText{En: "Choco Chip", Ar: "كوكيز شوكولاتة"},
			Description: models.LocalizedText{En: "Soft cookie", Ar: "كوكيز طرية"},
			ImageURL:    "/images/choco.jpg",
			Options: []models.ProductOption{
				{Label: "Single", Price: 45, Currency: "EGP"},
				{Label: "Box of 6", Price: 240, Currency: "EGP"},
			},
			Notes: &models.LocalizedNotes{
				En: []string{"Extra chocolate = 40"},
				Ar: []string{"شوكولاتة إضافات = 40"},
			},
			WithExtraChocolate: []models.ExtraOption{
				{Label: "Single", Price: &singleWithChocolate, Currency: "EGP"},
				{Label: "Box of 6"},
			},
		},
		{
			ID:          2,
			Category:    "Tarts",
			Name:        models.LocalizedText{En: "Lemon Tart", Ar: "تارت ليمون"},
			Description: models.LocalizedText{En: "Tangy tart", Ar: "تارت بالليمون"},
			ImageURL:    "/images/lemon.jpg",
			Options:     []models.ProductOption{{Label: "Slice", Price: 90, Currency: "EGP"}},
		},
	}
}

type menuEnvelope struct {
	Message string              `json:"message"`
	Error   bool                `json:"error"`
	Data    models.MenuResponse `json:"data"`
}

func getMenu(t *testing.T, router *gin.Engine, url string) menuEnvelope {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET %s = %d, want 200", url, w.Code)
	}
	var env menuEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestGetMenuProducts(t *testing.T) {
	catalog.Set(fixtureCatalog())
	defer catalog.Set(nil)
	router := newRouter()

	tests := []struct {
		name    string
		url     string
		wantIDs []int
	}{
		{
			name:    "full menu",
			url:     "/api/v1/store/products",
			wantIDs: []int{1, 2},
		},
		{
			name:    "category filter",
			url:     "/api/v1/store/products?category=Cookies",
			wantIDs: []int{1},
		},
		{
			name:    "search filter",
			url:     "/api/v1/store/products?q=tart",
			wantIDs: []int{2},
		},
		{
			name:    "unknown category",
			url:     "/api/v1/store/products?category=Macarons&q=tart",
			wantIDs: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := getMenu(t, router, tt.url)
			got := make([]int, 0, len(env.Data.Products))
			for _, p := range env.Data.Products {
				got = append(got, p.ID)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got products %v, want %v", got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Fatalf("got products %v, want %v", got, tt.wantIDs)
				}
			}
		})
	}
}

func TestGetMenuProductsCountsAndHighlight(t *testing.T) {
	catalog.Set(fixtureCatalog())
	defer catalog.Set(nil)
	router := newRouter()

	env := getMenu(t, router, "/api/v1/store/products?q=tart&lang=en")

	if env.Data.Counts["All"] != 2 || env.Data.Counts["Cookies"] != 1 || env.Data.Counts["Tarts"] != 1 {
		t.Errorf("counts = %v", env.Data.Counts)
	}
	if env.Data.IsLoading {
		t.Error("is_loading should be false once the catalog is set")
	}

	if len(env.Data.Products) != 1 {
		t.Fatalf("visible products = %d, want 1", len(env.Data.Products))
	}
	segments := env.Data.Products[0].NameSegments
	var matchedText string
	for _, s := range segments {
		if s.Matched {
			matchedText += s.Text
		}
	}
	if matchedText != "Tart" {
		t.Errorf("matched segment text = %q, want Tart", matchedText)
	}
}

func TestGetMenuProductsEmptyState(t *testing.T) {
	catalog.Set(fixtureCatalog())
	defer catalog.Set(nil)
	router := newRouter()

	env := getMenu(t, router, "/api/v1/store/products?q=cheesecake&lang=en")
	if len(env.Data.Products) != 0 {
		t.Fatalf("expected no products, got %d", len(env.Data.Products))
	}
	if env.Data.EmptyTitle != "No desserts found" {
		t.Errorf("empty_title = %q", env.Data.EmptyTitle)
	}
}

func TestGetMenuProductsLocalizedNames(t *testing.T) {
	catalog.Set(fixtureCatalog())
	defer catalog.Set(nil)
	router := newRouter()

	en := getMenu(t, router, "/api/v1/store/products?category=Tarts&lang=en")
	if en.Data.Products[0].Name != "Lemon Tart" {
		t.Errorf("en name = %q", en.Data.Products[0].Name)
	}

	ar := getMenu(t, router, "/api/v1/store/products?category=Tarts")
	if ar.Data.Products[0].Name != "تارت ليمون" {
		t.Errorf("default-language name = %q, want the arabic variant", ar.Data.Products[0].Name)
	}
	if ar.Data.Products[0].StartingFrom != 90 {
		t.Errorf("starting_from = %v, want 90", ar.Data.Products[0].StartingFrom)
	}
}
