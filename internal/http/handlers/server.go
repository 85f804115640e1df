package handlers

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/glowcosmetics/storefront/internal/cart"
	"github.com/glowcosmetics/storefront/internal/redissvc"
	"github.com/glowcosmetics/storefront/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	userRepo     repo.UserRepository
	movementRepo repo.MovementRepository

	cartStore *cart.Store

	// Rdb is nil when Redis is not wired (tests); every cache path is
	// guarded on that.
	Rdb *redis.Client
	Ctx context.Context
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetCartStore(s *cart.Store) {
	cartStore = s
}

func SetRedisService(rs *redissvc.RedisService) {
	Rdb = rs.Rdb()
	Ctx = rs.Ctx()
}
