package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glowcosmetics/storefront/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `p.id, p.name, p.description, p.price, p.stock, p.category_id, c.name, p.image_url, p.ingredients, p.featured, p.created_at, p.updated_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var ingredients []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
		&p.CategoryName, &p.ImageURL, &ingredients, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Product{}, err
	}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &p.Ingredients); err != nil {
			return models.Product{}, fmt.Errorf("failed to decode ingredients: %w", err)
		}
	}
	return p, nil
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	ingredients, err := json.Marshal(p.Ingredients)
	if err != nil {
		return models.Product{}, err
	}

	query := `INSERT INTO products (name, description, price, stock, category_id, image_url, ingredients, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Price, p.Stock,
		p.CategoryID, p.ImageURL, ingredients, p.Featured, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON p.category_id = c.id ORDER BY p.id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON p.category_id = c.id WHERE p.id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	ingredients, err := json.Marshal(p.Ingredients)
	if err != nil {
		return models.Product{}, err
	}

	query := `UPDATE products SET name = $1, description = $2, price = $3, stock = $4, category_id = $5,
		image_url = $6, ingredients = $7, featured = $8, updated_at = $9 WHERE id = $10`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.Price, p.Stock,
		p.CategoryID, p.ImageURL, ingredients, p.Featured, p.UpdatedAt, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	conditions, args, argIdx := filterConditions(pf)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM products p WHERE 1=1` + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON p.category_id = c.id WHERE 1=1`
	query += conditions
	query += " ORDER BY p.id"

	if pf.Limit != nil && *pf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *pf.Limit)
		argIdx++
	}
	if pf.Offset != nil && *pf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *pf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	return products, totalCount, rows.Err()
}

func filterConditions(pf ProductFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	if pf.Name != "" {
		query += fmt.Sprintf(" AND p.name ILIKE $%d", argIdx)
		args = append(args, "%"+pf.Name+"%")
		argIdx++
	}
	if pf.CategoryID != nil {
		query += fmt.Sprintf(" AND p.category_id = $%d", argIdx)
		args = append(args, *pf.CategoryID)
		argIdx++
	}
	if pf.Featured != nil {
		query += fmt.Sprintf(" AND p.featured = $%d", argIdx)
		args = append(args, *pf.Featured)
		argIdx++
	}
	if pf.MinPrice != nil {
		query += fmt.Sprintf(" AND p.price >= $%d", argIdx)
		args = append(args, *pf.MinPrice)
		argIdx++
	}
	if pf.MaxPrice != nil {
		query += fmt.Sprintf(" AND p.price <= $%d", argIdx)
		args = append(args, *pf.MaxPrice)
		argIdx++
	}
	if pf.MinStock != nil {
		query += fmt.Sprintf(" AND p.stock >= $%d", argIdx)
		args = append(args, *pf.MinStock)
		argIdx++
	}
	if pf.MaxStock != nil {
		query += fmt.Sprintf(" AND p.stock <= $%d", argIdx)
		args = append(args, *pf.MaxStock)
		argIdx++
	}

	return query, args, argIdx
}

func (r *PostgresProductRepository) AdjustStock(productID, delta int) (models.Product, error) {
	query := `
		UPDATE products p
		SET stock = stock + $1, updated_at = $2
		FROM categories c
		WHERE p.id = $3 AND p.category_id = c.id AND p.stock + $1 >= 0
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, delta, time.Now().UTC().Format(time.RFC3339), productID))
	if errors.Is(err, sql.ErrNoRows) {
		// no row updated: either the product does not exist or the
		// delta would drive stock below zero
		if _, getErr := r.GetByID(productID); errors.Is(getErr, ErrProductNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, ErrInvalidStockChange
	}
	return p, err
}
