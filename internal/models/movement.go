package models

// Movement is one stock adjustment applied to a product from the admin
// stock view. Delta is positive for restocks, negative for removals.
type Movement struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}
