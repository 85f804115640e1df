package handlers

import "github.com/glowcosmetics/storefront/internal/report"

type ProductRequest struct {
	Id          int      `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	CategoryID  int      `json:"category_id"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
	Featured    bool     `json:"featured"`
}

type ProductResponse struct {
	Id           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Stock        int      `json:"stock"`
	CategoryID   int      `json:"category_id"`
	CategoryName string   `json:"category_name,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Featured     bool     `json:"featured"`
	LowStock     bool     `json:"low_stock,omitempty"`
	OutOfStock   bool     `json:"out_of_stock,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type StockAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type MovementResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RegisterResult struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RoleUpdateRequest struct {
	Role string `json:"role"`
}

type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type DashboardMetricsResponse struct {
	TotalProducts   int                   `json:"total_products"`
	TotalCategories int                   `json:"total_categories"`
	TotalUsers      int                   `json:"total_users"`
	TotalStock      int                   `json:"total_stock"`
	OutOfStockItems []ProductResponse     `json:"out_of_stock_items"`
	LowStockItems   []ProductResponse     `json:"low_stock_items"`
	CategoryStats   []report.CategoryStat `json:"category_stats"`
	RecentProducts  []ProductResponse     `json:"recent_products"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
