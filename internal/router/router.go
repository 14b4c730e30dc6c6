package router

import (
	"time"

	"stockroom/internal/config"
	"stockroom/internal/handler"
	"stockroom/internal/middleware"
	"stockroom/internal/policy"
	"stockroom/internal/repository"
	"stockroom/internal/service"

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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	movementRepo := repository.NewMovementRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo)
	movementSvc := service.NewMovementService(movementRepo, productRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	movementsH := handler.NewMovementsHandler(movementSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		api.GET("/me", authH.Me)

		users := api.Group("/users", middleware.Require(policy.ActionManageUsers))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.DELETE("/:id", usersH.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", middleware.Require(policy.ActionCatalogRead), categoriesH.List)
			categories.POST("", middleware.Require(policy.ActionCatalogWrite), categoriesH.Create)
			categories.PUT("/:id", middleware.Require(policy.ActionCatalogWrite), categoriesH.Update)
			categories.DELETE("/:id", middleware.Require(policy.ActionCatalogWrite), categoriesH.Delete)
		}

		products := api.Group("/products")
		{
			products.GET("", middleware.Require(policy.ActionCatalogRead), productsH.List)
			products.GET("/:id", middleware.Require(policy.ActionCatalogRead), productsH.Get)
			products.POST("", middleware.Require(policy.ActionCatalogWrite), productsH.Create)
			products.PUT("/:id", middleware.Require(policy.ActionCatalogWrite), productsH.Update)
			products.DELETE("/:id", middleware.Require(policy.ActionCatalogWrite), productsH.Delete)
		}

		movements := api.Group("/movements")
		{
			movements.GET("", middleware.Require(policy.ActionLedgerRead), movementsH.List)
			movements.POST("", middleware.Require(policy.ActionLedgerWrite), movementsH.Record)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", middleware.Require(policy.ActionOrderRead), ordersH.List)
			orders.GET("/:id", middleware.Require(policy.ActionOrderRead), ordersH.Get)
			orders.POST("", middleware.Require(policy.ActionOrderWrite), ordersH.Place)
			orders.PUT("/:id/status", middleware.Require(policy.ActionOrderWrite), ordersH.UpdateStatus)
		}

		api.GET("/dashboard", middleware.Require(policy.ActionDashboardRead), dashboardH.Snapshot)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
