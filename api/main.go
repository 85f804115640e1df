package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glowcosmetics/storefront/internal/auth"
	"github.com/glowcosmetics/storefront/internal/cart"
	"github.com/glowcosmetics/storefront/internal/config"
	"github.com/glowcosmetics/storefront/internal/db"
	api "github.com/glowcosmetics/storefront/internal/http"
	"github.com/glowcosmetics/storefront/internal/http/ban"
	"github.com/glowcosmetics/storefront/internal/http/handlers"
	rl "github.com/glowcosmetics/storefront/internal/http/rate_limiter"
	"github.com/glowcosmetics/storefront/internal/redissvc"
	"github.com/glowcosmetics/storefront/internal/repo"
)

// @title Glow Storefront API
// @version 1.0
// @description REST API for the Glow cosmetics storefront and its admin back office.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	handlers.SetRedisService(redisService)
	ban.SetRedisService(redisService)
	auth.SetRedis(rdb, ctx)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}
	defer database.Close()

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
	cartStore := cart.NewStore()
	handlers.SetCartStore(cartStore)

	go rl.StartVisitorCleanupLoop()
	go ban.StartDailyBanSummary(24 * time.Hour)
	go cartStore.StartEvictionLoop(time.Minute, 30*time.Minute)

	r := api.NewRouter()
	log.Printf("Server running on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, r); err != nil {
		log.Fatal(err)
	}
}
