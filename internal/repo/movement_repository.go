package repo

import (
	"time"

	"github.com/glowcosmetics/storefront/internal/models"
)

type MovementRepository interface {
	Log(productID, delta int) error
	GetByProductID(productID int, mf MovementFilter) ([]models.Movement, int, error)
}

type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}
