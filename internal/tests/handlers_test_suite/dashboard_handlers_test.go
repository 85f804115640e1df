package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/glowcosmetics/storefront/internal/http"
	handler "github.com/glowcosmetics/storefront/internal/http/handlers"
	"github.com/glowcosmetics/storefront/internal/models"
)

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	w := createCategory(r, "Skincare")
	var skincare models.Category
	json.NewDecoder(w.Body).Decode(&skincare)
	w = createCategory(r, "Haircare")
	var haircare models.Category
	json.NewDecoder(w.Body).Decode(&haircare)
	createCategory(r, "Makeup")

	// stocks 0, 3, 10, 5: one out of stock, two low, total 18
	createProduct(r, handler.ProductRequest{Name: "Serum", Price: 29.9, Stock: 0, CategoryID: skincare.ID})
	createProduct(r, handler.ProductRequest{Name: "Cream", Price: 45.0, Stock: 3, CategoryID: skincare.ID})
	createProduct(r, handler.ProductRequest{Name: "Toner", Price: 19.9, Stock: 10, CategoryID: skincare.ID})
	createProduct(r, handler.ProductRequest{Name: "Shampoo", Price: 12.5, Stock: 5, CategoryID: haircare.ID})

	w = doJSON(r, http.MethodGet, "/dashboard/metrics", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.DashboardMetricsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.TotalProducts != 4 {
		t.Errorf("expected 4 products, got %d", resp.TotalProducts)
	}
	if resp.TotalCategories != 3 {
		t.Errorf("expected 3 categories, got %d", resp.TotalCategories)
	}
	if resp.TotalStock != 18 {
		t.Errorf("expected total stock 18, got %d", resp.TotalStock)
	}
	if len(resp.OutOfStockItems) != 1 || resp.OutOfStockItems[0].Name != "Serum" {
		t.Errorf("unexpected out of stock items: %+v", resp.OutOfStockItems)
	}
	if len(resp.LowStockItems) != 2 {
		t.Fatalf("expected 2 low stock items, got %+v", resp.LowStockItems)
	}
	if resp.LowStockItems[0].Name != "Cream" || resp.LowStockItems[1].Name != "Shampoo" {
		t.Errorf("unexpected low stock items: %+v", resp.LowStockItems)
	}

	if len(resp.CategoryStats) != 3 {
		t.Fatalf("expected stats for all 3 categories, got %+v", resp.CategoryStats)
	}
	first := resp.CategoryStats[0]
	if first.Name != "Skincare" || first.Count != 3 || first.Percentage != 75 {
		t.Errorf("unexpected leading category stat: %+v", first)
	}
	second := resp.CategoryStats[1]
	if second.Name != "Haircare" || second.Count != 1 || second.Percentage != 25 {
		t.Errorf("unexpected second category stat: %+v", second)
	}
	third := resp.CategoryStats[2]
	if third.Name != "Makeup" || third.Count != 0 || third.Percentage != 0 {
		t.Errorf("expected empty category with zero stats, got %+v", third)
	}

	if len(resp.RecentProducts) != 4 {
		t.Errorf("expected all 4 products in recent strip, got %d", len(resp.RecentProducts))
	}
}

func TestGetDashboardMetricsHandler_EmptyCatalog(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/dashboard/metrics", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.DashboardMetricsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.TotalProducts != 0 || resp.TotalStock != 0 {
		t.Errorf("expected empty metrics, got %+v", resp)
	}
	if len(resp.OutOfStockItems) != 0 || len(resp.LowStockItems) != 0 || len(resp.RecentProducts) != 0 {
		t.Errorf("expected empty alert buckets, got %+v", resp)
	}
}

func TestGetDashboardMetricsHandler_RequiresAdmin(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/dashboard/metrics", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
