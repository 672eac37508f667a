package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/saintreact/inventory-api/docs"
	"github.com/saintreact/inventory-api/internal/api/handler"
	"github.com/saintreact/inventory-api/internal/api/middleware"
	"github.com/saintreact/inventory-api/internal/core/service"
	"github.com/saintreact/inventory-api/internal/infrastructure/config"
	mongodb "github.com/saintreact/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/saintreact/inventory-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb, log)

	hasher := service.NewBcryptHasher()
	codec := service.NewTokenCodec(cfg.JWTSecret, service.DefaultTokenTTL)
	authService := service.NewAuthService(userRepo, hasher, codec, log)
	productService := service.NewProductService(productRepo, productCache, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)

	// --- Auth routes ---
	e.POST("/new_user", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/perfil", authHandler.Profile, middleware.Auth(codec))

	// --- Inventory routes (no auth, per the frontend contract) ---
	e.POST("/estoque/cadastrar", productHandler.Create)
	e.GET("/estoque/listar", productHandler.List)
	e.GET("/estoque/produto/:codigo", productHandler.Get)
	e.PUT("/estoque/editar/:codigo", productHandler.Update)
	e.DELETE("/estoque/deletar/:codigo", productHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
