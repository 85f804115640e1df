package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/glowcosmetics/storefront/internal/models"
	"github.com/glowcosmetics/storefront/internal/repo"
)

const productsCacheKey = "catalog:products"

func cachedProductList() ([]byte, bool) {
	if Rdb == nil {
		return nil, false
	}
	data, err := Rdb.Get(Ctx, productsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func storeProductListCache(data []byte) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(Ctx, productsCacheKey, data, 5*time.Minute).Err(); err != nil {
		log.Printf("Failed to cache product list: %v", err)
	}
}

func invalidateProductListCache() {
	if Rdb == nil {
		return
	}
	Rdb.Del(Ctx, productsCacheKey)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} []ProductValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Featured:    req.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create product: product name duplicated", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}
	invalidateProductListCache()

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List catalog products
// @Description Without query parameters returns the full catalog; with
// @Description filter or pagination parameters returns a search result with a total count.
// @Tags products
// @Produce json
// @Param name query string false "Name substring filter"
// @Param category_id query int false "Category filter"
// @Param featured query bool false "Featured filter"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param min_stock query int false "Minimum stock"
// @Param max_stock query int false "Maximum stock"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {array} ProductResponse
// @Failure 400 {string} string "Invalid filter"
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if len(r.URL.Query()) > 0 {
		filterProducts(w, r)
		return
	}

	if data, ok := cachedProductList(); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	data, err := json.Marshal(toProductResponses(products))
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	storeProductListCache(data)

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func filterProducts(w http.ResponseWriter, r *http.Request) {
	pf, err := parseProductFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, totalCount, err := productRepo.Filter(pf)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	result := ProductsSearchResult{
		Data: toProductResponses(products),
		Meta: Meta{TotalCount: totalCount},
	}
	writeJSON(w, http.StatusOK, result)
}

func parseProductFilter(r *http.Request) (repo.ProductFilter, error) {
	var pf repo.ProductFilter
	q := r.URL.Query()

	pf.Name = q.Get("name")

	if v := q.Get("category_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return pf, errors.New("invalid category_id")
		}
		pf.CategoryID = &n
	}
	if v := q.Get("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return pf, errors.New("invalid featured")
		}
		pf.Featured = &b
	}
	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pf, errors.New("invalid min_price")
		}
		pf.MinPrice = &f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pf, errors.New("invalid max_price")
		}
		pf.MaxPrice = &f
	}
	if v := q.Get("min_stock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return pf, errors.New("invalid min_stock")
		}
		pf.MinStock = &n
	}
	if v := q.Get("max_stock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return pf, errors.New("invalid max_stock")
		}
		pf.MaxStock = &n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return pf, errors.New("invalid offset")
		}
		pf.Offset = &n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return pf, errors.New("invalid limit")
		}
		pf.Limit = &n
	}

	return pf, nil
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} []ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [put]
// @Security BearerAuth
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	existing, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	product := models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Featured:    req.Featured,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	invalidateProductListCache()

	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
// @Security BearerAuth
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	invalidateProductListCache()

	w.WriteHeader(http.StatusNoContent)
}
