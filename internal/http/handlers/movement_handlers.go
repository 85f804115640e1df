package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/glowcosmetics/storefront/internal/repo"
	"github.com/glowcosmetics/storefront/internal/report"
)

// AdjustStockHandler godoc
// @Summary Adjust stock of a product
// @Tags stock
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param adjustment body StockAdjustmentRequest true "Stock change"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid adjustment"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Stock cannot become negative"
// @Router /products/{id}/adjust [post]
// @Security BearerAuth
func AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req StockAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := productRepo.AdjustStock(id, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrInvalidStockChange):
			http.Error(w, "stock cannot become negative", http.StatusConflict)
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		default:
			http.Error(w, "could not update stock", http.StatusInternalServerError)
		}
		return
	}
	_ = movementRepo.Log(id, req.Delta)
	invalidateProductListCache()

	if product.Stock == 0 {
		log.Printf("ALERT: Product %d (%s) is out of stock", product.ID, product.Name)
	} else if product.Stock <= report.LowStockThreshold {
		log.Printf("ALERT: Product %d (%s) is low on stock: %d left", product.ID, product.Name, product.Stock)
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// GetMovementsHandler godoc
// @Summary Get stock movement logs for a product
// @Tags stock
// @Produce json
// @Param id path int true "Product ID"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Router /products/{id}/movements [get]
// @Security BearerAuth
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if _, err := productRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	mf, err := parseMovementFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movements, totalCount, err := movementRepo.GetByProductID(id, mf)
	if err != nil {
		http.Error(w, "could not fetch movements", http.StatusInternalServerError)
		return
	}

	result := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: totalCount},
	}
	for i, m := range movements {
		result.Data[i] = MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Delta:     m.Delta,
			CreatedAt: m.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, result)
}

func parseMovementFilter(r *http.Request) (repo.MovementFilter, error) {
	var mf repo.MovementFilter
	q := r.URL.Query()

	// URL query decoding turns the + of an RFC3339 zone offset into a
	// space; undo that before parsing.
	fixZone := func(s string) string {
		if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
			return s[:len(s)-6] + "+" + s[len(s)-5:]
		}
		return s
	}

	if v := q.Get("since"); v != "" {
		t, err := time.Parse(time.RFC3339, fixZone(v))
		if err != nil {
			return mf, errors.New("invalid since timestamp")
		}
		mf.Since = &t
	}
	if v := q.Get("until"); v != "" {
		t, err := time.Parse(time.RFC3339, fixZone(v))
		if err != nil {
			return mf, errors.New("invalid until timestamp")
		}
		mf.Until = &t
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return mf, errors.New("invalid offset")
		}
		mf.Offset = &n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return mf, errors.New("invalid limit")
		}
		mf.Limit = &n
	}

	return mf, nil
}
