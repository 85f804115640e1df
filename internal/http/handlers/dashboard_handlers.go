package handlers

import (
	"log"
	"net/http"

	"github.com/glowcosmetics/storefront/internal/report"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for the admin view
// @Description Derives stock alert buckets, the category distribution
// @Description quota and the recent products strip from the current
// @Description catalog snapshot.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardMetricsResponse
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/metrics [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	categories, err := categoryRepo.GetAll()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	users, err := userRepo.GetAll()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	resp := DashboardMetricsResponse{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		TotalUsers:      len(users),
		TotalStock:      report.TotalStock(products),
		OutOfStockItems: toProductResponses(report.OutOfStock(products)),
		LowStockItems:   toProductResponses(report.LowStock(products)),
		CategoryStats:   report.CategoryStats(categories, products),
		RecentProducts:  toProductResponses(report.Recent(products)),
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
