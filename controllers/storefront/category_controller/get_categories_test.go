package category_controller_test

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

func TestGetCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupStorefrontRoutes(router.Group("/api/v1"))

	opt := []models.ProductOption{{Label: "Single", Price: 45, Currency: "EGP"}}
	catalog.Set([]models.Product{
		{ID: 1, Category: "Cookies", Name: models.LocalizedText{En: "A", Ar: "أ"}, Description: models.LocalizedText{En: "a", Ar: "أ"}, Options: opt},
		{ID: 2, Category: "Cookies", Name: models.LocalizedText{En: "B", Ar: "ب"}, Description: models.LocalizedText{En: "b", Ar: "ب"}, Options: opt},
		{ID: 3, Category: "Tarts", Name: models.LocalizedText{En: "C", Ar: "ج"}, Description: models.LocalizedText{En: "c", Ar: "ج"}, Options: opt},
	})
	defer catalog.Set(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/categories?lang=en", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env struct {
		Data []models.CategoryInfo `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(env.Data) != len(models.Categories)+1 {
		t.Fatalf("categories = %d, want %d", len(env.Data), len(models.Categories)+1)
	}

	byID := make(map[string]models.CategoryInfo, len(env.Data))
	for _, c := range env.Data {
		byID[c.ID] = c
	}

	if byID[models.CategoryAll].Count != 3 {
		t.Errorf("All count = %d, want 3", byID[models.CategoryAll].Count)
	}
	if byID["Cookies"].Count != 2 {
		t.Errorf("Cookies count = %d, want 2", byID["Cookies"].Count)
	}
	if byID["Brownies"].Count != 0 {
		t.Errorf("Brownies count = %d, want 0", byID["Brownies"].Count)
	}
	if byID[models.CategoryAll].Label != "All" {
		t.Errorf("All label = %q", byID[models.CategoryAll].Label)
	}

	// All entry comes first, matching the sidebar order.
	if env.Data[0].ID != models.CategoryAll {
		t.Errorf("first category = %q, want All", env.Data[0].ID)
	}
}
