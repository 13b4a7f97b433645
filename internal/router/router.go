package router

import (
	"net/http"
	"time"

	"github.com/widal001/meal-planner-api/internal/config"
	"github.com/widal001/meal-planner-api/internal/handler"
	"github.com/widal001/meal-planner-api/internal/middleware"
	"github.com/widal001/meal-planner-api/internal/repository"
	"github.com/widal001/meal-planner-api/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	foodRepo := repository.NewFoodRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	foodSvc := service.NewFoodService(foodRepo)
	ingredientSvc := service.NewIngredientService(ingredientRepo, foodSvc)
	recipeSvc := service.NewRecipeService(recipeRepo, ingredientSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	// Disabling the cache must not hide Redis from the health check, so the
	// handler gets its own client reference.
	cacheTTL := time.Duration(cfg.RecipeCacheTTLSeconds) * time.Second
	recipesH := handler.NewRecipesHandler(recipeSvc, cacheClient(rdb, cacheTTL), cacheTTL)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	recipes := r.Group("/recipes")
	{
		recipes.GET("/", recipesH.List)
		recipes.POST("/", recipesH.Create)
		recipes.GET("/:id", recipesH.Get)
	}

	// Swagger UI — only enabled outside production; the root path redirects
	// there so the docs are one click away in development.
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	return r
}

// cacheClient returns the client the recipe-detail cache should use: nil when
// the TTL disables caching, the real client otherwise.
func cacheClient(rdb *redis.Client, ttl time.Duration) *redis.Client {
	if ttl <= 0 {
		return nil
	}
	return rdb
}
