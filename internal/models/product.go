package models

// Product represents a catalog product as served to the storefront and
// the admin back office. CategoryName is denormalized from the joined
// category for display.
type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Stock        int      `json:"stock"`
	CategoryID   int      `json:"category_id"`
	CategoryName string   `json:"category_name,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Featured     bool     `json:"featured"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

// Category groups products for the catalog pages.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
