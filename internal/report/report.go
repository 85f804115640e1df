// Package report derives the admin dashboard views from a product and
// category snapshot: stock alert buckets, total stock, the category
// distribution quota and the recent products strip. All functions are
// pure and never mutate their inputs; empty input yields empty output.
package report

import (
	"math"
	"sort"

	"github.com/glowcosmetics/storefront/internal/models"
)

// LowStockThreshold is the fixed alert policy: a product with 1 to 5
// units remaining counts as low stock.
const LowStockThreshold = 5

// RecentLimit is how many products the recent strip shows.
const RecentLimit = 5

// CategoryStat is one category's share of the catalog.
type CategoryStat struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// OutOfStock returns the products with zero stock, in input order.
func OutOfStock(products []models.Product) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if p.Stock == 0 {
			out = append(out, p)
		}
	}
	return out
}

// LowStock returns the products with stock in (0, LowStockThreshold],
// in input order. Out-of-stock products are not low stock.
func LowStock(products []models.Product) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if p.Stock > 0 && p.Stock <= LowStockThreshold {
			out = append(out, p)
		}
	}
	return out
}

// TotalStock sums stock over all products.
func TotalStock(products []models.Product) int {
	total := 0
	for _, p := range products {
		total += p.Stock
	}
	return total
}

// CategoryStats computes, for every category, the number of products in
// it and its rounded percentage of the total catalog. Categories with no
// products are included with count 0. The result is sorted descending by
// count; ties keep the input category order.
func CategoryStats(categories []models.Category, products []models.Product) []CategoryStat {
	stats := make([]CategoryStat, 0, len(categories))
	for _, c := range categories {
		count := 0
		for _, p := range products {
			if p.CategoryID == c.ID {
				count++
			}
		}
		percentage := 0
		if len(products) > 0 {
			percentage = int(math.Round(float64(count) / float64(len(products)) * 100))
		}
		stats = append(stats, CategoryStat{Name: c.Name, Count: count, Percentage: percentage})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}

// Recent returns the first RecentLimit products in the order supplied by
// the caller. No recency sort happens here; recency is whatever ordering
// the caller provided.
func Recent(products []models.Product) []models.Product {
	n := len(products)
	if n > RecentLimit {
		n = RecentLimit
	}
	out := make([]models.Product, n)
	copy(out, products[:n])
	return out
}
