package repo

import (
	"github.com/glowcosmetics/storefront/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	categories []models.Category
	products   ProductRepository
	nextID     int
}

// NewInMemoryCategoryRepository creates a new instance of InMemoryCategoryRepository.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: []models.Category{},
		nextID:     1,
	}
}

// SetProductRepository wires the product repository used for the in-use
// check on delete, mirroring the foreign key in Postgres.
func (r *InMemoryCategoryRepository) SetProductRepository(products ProductRepository) {
	r.products = products
}

func (r *InMemoryCategoryRepository) Create(c models.Category) (models.Category, error) {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return models.Category{}, ErrDuplicatedValueUnique
		}
	}
	c.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, c)
	return c, nil
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	return r.categories, nil
}

func (r *InMemoryCategoryRepository) GetByID(id int) (models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Update(c models.Category) (models.Category, error) {
	for i, existing := range r.categories {
		if existing.ID == c.ID {
			r.categories[i] = c
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Delete(id int) error {
	if r.products != nil {
		products, err := r.products.GetAll()
		if err != nil {
			return err
		}
		for _, p := range products {
			if p.CategoryID == id {
				return ErrCategoryInUse
			}
		}
	}
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Clear() {
	r.categories = []models.Category{}
}
