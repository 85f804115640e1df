package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/glowcosmetics/storefront/internal/http"
	handler "github.com/glowcosmetics/storefront/internal/http/handlers"
)

func TestAdjustStockHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllMovements)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Serum", Price: 29.9, Stock: 10, CategoryID: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjust", created.Id),
		handler.StockAdjustmentRequest{Delta: -4}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Stock != 6 {
		t.Errorf("expected stock 6, got %d", resp.Stock)
	}
}

func TestAdjustStockHandler_CannotGoNegative(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllMovements)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Serum", Price: 29.9, Stock: 3, CategoryID: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjust", created.Id),
		handler.StockAdjustmentRequest{Delta: -4}, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	// stock untouched after rejected adjustment
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.Id), nil, "")
	var resp handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Stock != 3 {
		t.Errorf("expected stock 3, got %d", resp.Stock)
	}
}

func TestAdjustStockHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllMovements)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/products/999/adjust",
		handler.StockAdjustmentRequest{Delta: 1}, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetMovementsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllMovements)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Serum", Price: 29.9, Stock: 10, CategoryID: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	deltas := []int{-2, 5, -1}
	for _, d := range deltas {
		doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjust", created.Id),
			handler.StockAdjustmentRequest{Delta: d}, token)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d/movements", created.Id), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result handler.MovementsSearchResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Meta.TotalCount != len(deltas) {
		t.Errorf("expected %d movements, got %d", len(deltas), result.Meta.TotalCount)
	}
	for i, m := range result.Data {
		if m.Delta != deltas[i] {
			t.Errorf("movement %d: expected delta %d, got %d", i, deltas[i], m.Delta)
		}
		if m.ProductID != created.Id {
			t.Errorf("movement %d: unexpected product id %d", i, m.ProductID)
		}
	}
}

func TestGetMovementsHandler_Paginated(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllMovements)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Serum", Price: 29.9, Stock: 100, CategoryID: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	for i := 0; i < 5; i++ {
		doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjust", created.Id),
			handler.StockAdjustmentRequest{Delta: -1}, token)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d/movements?offset=1&limit=2", created.Id), nil, token)
	var result handler.MovementsSearchResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Meta.TotalCount != 5 {
		t.Errorf("expected total count 5, got %d", result.Meta.TotalCount)
	}
	if len(result.Data) != 2 {
		t.Errorf("expected 2 movements on page, got %d", len(result.Data))
	}
}

func TestGetMovementsHandler_ProductNotFound(t *testing.T) {
	t.Cleanup(clearAllMovements)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/products/999/movements", nil, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetMovementsHandler_InvalidSince(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Serum", Price: 29.9, Stock: 10, CategoryID: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d/movements?since=yesterday", created.Id), nil, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
