package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/glowcosmetics/storefront/internal/http"
	handler "github.com/glowcosmetics/storefront/internal/http/handlers"
	"github.com/glowcosmetics/storefront/internal/models"
)

func TestCreateCategoryHandler(t *testing.T) {
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	w := createCategory(r, "Skincare")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.Category
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Skincare" {
		t.Errorf("expected name 'Skincare', got %v", resp.Name)
	}
	if resp.ID == 0 {
		t.Error("expected category to be assigned an id")
	}
}

func TestCreateCategoryHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	w := createCategory(r, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty name, got %d", w.Code)
	}
}

func TestGetCategoriesHandler(t *testing.T) {
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	createCategory(r, "Skincare")
	createCategory(r, "Haircare")

	w := doJSON(r, http.MethodGet, "/categories", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []models.Category
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("expected 2 categories, got %d", len(resp))
	}
}

func TestGetCategoryByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/categories/999", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUpdateCategoryHandler(t *testing.T) {
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	w := createCategory(r, "Skincare")
	var created models.Category
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/categories/%d", created.ID),
		handler.CategoryRequest{Name: "Body Care"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.Category
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Body Care" {
		t.Errorf("expected renamed category, got %v", resp.Name)
	}
}

func TestDeleteCategoryHandler(t *testing.T) {
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	w := createCategory(r, "Skincare")
	var created models.Category
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/categories/%d", created.ID), nil, token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/categories/%d", created.ID), nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestDeleteCategoryHandler_InUse(t *testing.T) {
	t.Cleanup(clearAllCategories)
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createCategory(r, "Skincare")
	var created models.Category
	json.NewDecoder(w.Body).Decode(&created)

	createProduct(r, handler.ProductRequest{Name: "Serum", Price: 29.9, Stock: 3, CategoryID: created.ID})

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/categories/%d", created.ID), nil, token)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for category in use, got %d", w.Code)
	}
}

func TestCategoryWrites_RequireAdmin(t *testing.T) {
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/categories", handler.CategoryRequest{Name: "Skincare"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
