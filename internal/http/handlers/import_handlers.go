package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/glowcosmetics/storefront/internal/models"
)

// ImportProductsHandler godoc
// @Summary Bulk import products from a CSV file
// @Description Expects a multipart form with a "file" field. Columns:
// @Description name, description, price, stock, category_id, image_url, featured.
// @Description Rows that fail validation are reported and skipped; valid
// @Description rows are imported.
// @Tags products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid upload"
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 7

	result := ImportProductsResult{Errors: []ProductValidationError{}}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("line %d", line),
				Description: "malformed CSV row",
			})
			continue
		}
		if line == 1 && record[0] == "name" {
			continue // header row
		}

		req, rowErr := parseImportRow(record)
		if rowErr != "" {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("line %d", line),
				Description: rowErr,
			})
			continue
		}

		validationErrors := validateProduct(req)
		if len(validationErrors) > 0 {
			for _, ve := range validationErrors {
				result.Errors = append(result.Errors, ProductValidationError{
					Field:       fmt.Sprintf("line %d: %s", line, ve.Field),
					Description: ve.Description,
				})
			}
			continue
		}

		now := time.Now().UTC().Format(time.RFC3339)
		_, err = productRepo.Create(models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
			CategoryID:  req.CategoryID,
			ImageURL:    req.ImageURL,
			Featured:    req.Featured,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("line %d", line),
				Description: err.Error(),
			})
			continue
		}
		result.ImportedProductsCount++
	}

	if result.ImportedProductsCount > 0 {
		invalidateProductListCache()
	}

	writeJSON(w, http.StatusOK, result)
}

func parseImportRow(record []string) (ProductRequest, string) {
	price, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return ProductRequest{}, "invalid price"
	}
	stock, err := strconv.Atoi(record[3])
	if err != nil {
		return ProductRequest{}, "invalid stock"
	}
	categoryID, err := strconv.Atoi(record[4])
	if err != nil {
		return ProductRequest{}, "invalid category_id"
	}
	featured := false
	if record[6] != "" {
		featured, err = strconv.ParseBool(record[6])
		if err != nil {
			return ProductRequest{}, "invalid featured flag"
		}
	}

	return ProductRequest{
		Name:        record[0],
		Description: record[1],
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
		ImageURL:    record[5],
		Featured:    featured,
	}, ""
}
