package catalog

import (
	"sync"

	"github.com/Salmayasser12/Sweet-Corner/models"
)

// ── In-memory catalog store ──────────────────────────────────────────────────
// The catalog is fetched once and read-only afterwards. The lock only
// guards the window between startup and load completion.

var (
	mu       sync.RWMutex
	products []models.Product
	loading  bool
)

// Products returns the loaded catalog. Empty until the load finishes, and
// empty forever if the load failed.
func Products() []models.Product {
	mu.RLock()
	defer mu.RUnlock()
	return products
}

// IsLoading reports whether the one-time catalog load is still in flight.
func IsLoading() bool {
	mu.RLock()
	defer mu.RUnlock()
	return loading
}

// Set stores the catalog and clears the loading flag.
func Set(p []models.Product) {
	mu.Lock()
	defer mu.Unlock()
	products = p
	loading = false
}

func markLoading() {
	mu.Lock()
	defer mu.Unlock()
	loading = true
}
