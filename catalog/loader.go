// Package catalog loads the product catalog once at startup and holds it
// in memory for the lifetime of the process.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/Salmayasser12/Sweet-Corner/config"
	"github.com/Salmayasser12/Sweet-Corner/models"
)

// Load fetches and parses the catalog document, exactly once. On any
// failure the catalog stays empty and the loading flag clears; the
// failure is logged and never surfaced to the storefront. No retry.
func Load(ctx context.Context) error {
	markLoading()

	data, err := fetchCatalog(ctx)
	if err != nil {
		Set(nil)
		log.Printf("❌ Catalog load failed: %v", err)
		return err
	}

	var catalog []models.Product
	if err := json.Unmarshal(data, &catalog); err != nil {
		Set(nil)
		log.Printf("❌ Catalog parse failed: %v", err)
		return err
	}
	if err := models.ValidateCatalog(catalog); err != nil {
		Set(nil)
		log.Printf("❌ Catalog rejected: %v", err)
		return err
	}

	Set(catalog)
	log.Printf("✅ Catalog loaded: %d products", len(catalog))
	return nil
}

// LoadAsync starts the one-time load without blocking startup. Requests
// arriving before completion see an empty catalog with IsLoading true.
func LoadAsync(ctx context.Context) {
	go func() {
		_ = Load(ctx)
	}()
}

func fetchCatalog(ctx context.Context) ([]byte, error) {
	if url := config.GetEnv("CATALOG_URL", ""); url != "" {
		return fetchRemote(ctx, url)
	}

	path := config.GetEnv("CATALOG_PATH", "data/products.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	return data, nil
}

// fetchRemote issues the single anonymous read-only request for the
// catalog resource. No query parameters, no authentication.
func fetchRemote(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
