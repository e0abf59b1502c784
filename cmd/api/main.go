package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/api"
	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/router"
	"github.com/pageza/recipebox/backend/internal/server"
	"github.com/pageza/recipebox/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	switch {
	case cfg.Environment.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.Environment.IsTest():
		gin.SetMode(gin.TestMode)
	}

	// cancelled on shutdown to stop background work
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := newRecipeStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open recipe store: %v", err)
	}

	recipeService := service.NewRecipeService(store)
	if cfg.SeedRecipes {
		if err := recipeService.SeedRecipes(ctx, service.DefaultRecipes); err != nil {
			log.Fatalf("Failed to seed recipes: %v", err)
		}
	}

	limiter, cleanup := newLimiter(ctx, cfg)
	defer cleanup()

	handler := router.SetupRouter(cfg, api.NewRecipeHandler(recipeService), limiter)
	srv := server.New(cfg, handler)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
		return
	}
	log.Println("Server stopped")
}

func newRecipeStore(cfg *config.Config) (service.IRecipeStore, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		return database.NewGormRecipeStore(db), nil
	default:
		log.Println("Using in-memory recipe store")
		return database.NewMemoryRecipeStore(), nil
	}
}

// newLimiter prefers Redis and falls back to an in-process limiter when Redis
// is not configured or not reachable. It returns nil when rate limiting is off.
// The in-process limiter evicts idle clients until ctx is cancelled.
func newLimiter(ctx context.Context, cfg *config.Config) (middleware.Limiter, func()) {
	noop := func() {}
	if !cfg.RateLimitEnabled {
		return nil, noop
	}

	if cfg.RedisEnabled() {
		redisClient, err := database.NewRedisClient(ctx, cfg)
		if err == nil {
			log.Printf("Rate limiting writes to %d per %v (redis)", cfg.RateLimitRequests, cfg.RateLimitWindow)
			return middleware.NewRecipeMutationRateLimiter(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow), func() {
				_ = redisClient.Close()
			}
		}
		log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
	}

	log.Printf("Rate limiting writes to %d per %v (in-process)", cfg.RateLimitRequests, cfg.RateLimitWindow)
	local := middleware.NewLocalRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	local.StartJanitor(ctx)
	return local, noop
}
