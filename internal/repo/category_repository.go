package repo

import (
	"errors"

	"github.com/glowcosmetics/storefront/internal/models"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(category models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id int) (models.Category, error)
	Update(category models.Category) (models.Category, error)
	Delete(id int) error
}

// ErrCategoryNotFound is returned when a category is not found in the repository.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCategoryInUse is returned when deleting a category that still has products.
var ErrCategoryInUse = errors.New("category still has products")
