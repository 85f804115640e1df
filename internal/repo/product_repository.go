package repo

import (
	"errors"

	"github.com/glowcosmetics/storefront/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	Filter(pf ProductFilter) ([]models.Product, int, error)
	AdjustStock(productID, delta int) (models.Product, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidStockChange is returned when an adjustment would drive stock below zero.
var ErrInvalidStockChange = errors.New("stock cannot become negative")

// ErrDuplicatedValueUnique is returned on unique constraint violations.
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
