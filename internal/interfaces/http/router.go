package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/application/inventory"
	"github.com/jhoicas/inventario-lotes-api/internal/application/usecase"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Gateway    *auth.Gateway
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	LotUC      *usecase.LotUseCase
	UserUC     *usecase.UserUseCase
	EntradaUC  *inventory.EntradaUseCase
	SalidaUC   *inventory.SalidaUseCase

	// POST /api/auth/token solo se registra si está habilitado.
	TokenEndpointEnabled   bool
	TokenRequestsPerMinute int
	Limiter                RateLimiter

	// MetricsHandler nil deja /metrics sin montar.
	MetricsHandler http.Handler
	MetricsPath    string

	Log *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health)
	if deps.MetricsHandler != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")
	api.Get("/health", Health)

	authMW := AuthMiddleware(deps.Gateway)
	adminMW := RequireAdmin(deps.Gateway)

	// Auth
	authHandler := NewAuthHandler(deps.Gateway)
	authGroup := api.Group("/auth")
	authGroup.Get("/verify", authMW, authHandler.Verify)
	authGroup.Get("/profile", authMW, authHandler.Profile)
	if deps.TokenEndpointEnabled {
		authGroup.Post("/token",
			RateLimit(deps.Limiter, "auth_token", deps.TokenRequestsPerMinute, deps.Log),
			authHandler.Token,
		)
	}

	// Admin (JWT + rol admin)
	adminHandler := NewAdminHandler(deps.UserUC)
	admin := api.Group("/admin", authMW, adminMW)
	admin.Post("/users", adminHandler.CreateUser)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:userId/deactivate", adminHandler.Deactivate)
	admin.Put("/users/:userId/activate", adminHandler.Activate)

	// Categorías: lectura para cualquier usuario, escritura solo admin
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categorias := api.Group("/categorias", authMW)
	categorias.Get("/", categoryHandler.List)
	categorias.Get("/:id", categoryHandler.GetByID)
	categorias.Post("/", adminMW, categoryHandler.Create)
	categorias.Put("/:id", adminMW, categoryHandler.Update)
	categorias.Delete("/:id", adminMW, categoryHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	productos := api.Group("/productos", authMW)
	productos.Get("/inventario/stock", productHandler.Stock)
	productos.Get("/inventario/stock/export", productHandler.StockExport)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)

	lotHandler := NewLotHandler(deps.LotUC)
	lotes := api.Group("/lotes", authMW)
	lotes.Get("/alertas/vencimientos", lotHandler.Expiring)
	lotes.Get("/producto/:idProducto", lotHandler.ListByProduct)
	lotes.Get("/", lotHandler.List)
	lotes.Post("/", lotHandler.Create)
	lotes.Get("/:id", lotHandler.GetByID)
	lotes.Put("/:id", lotHandler.Update)
	lotes.Delete("/:id", lotHandler.Delete)

	entradaHandler := NewEntradaHandler(deps.EntradaUC)
	entradas := api.Group("/entradas", authMW)
	entradas.Get("/ultimo-numero/sugerencia", entradaHandler.Suggestion)
	entradas.Get("/", entradaHandler.List)
	entradas.Post("/", entradaHandler.Create)
	entradas.Get("/:id", entradaHandler.GetByID)
	entradas.Get("/:id/acta", entradaHandler.Acta)
	entradas.Delete("/:id", entradaHandler.Delete)

	salidaHandler := NewSalidaHandler(deps.SalidaUC)
	salidas := api.Group("/salidas", authMW)
	salidas.Get("/ultimo-numero/sugerencia", salidaHandler.Suggestion)
	salidas.Get("/", salidaHandler.List)
	salidas.Post("/", salidaHandler.Create)
	salidas.Get("/:id", salidaHandler.GetByID)
	salidas.Get("/:id/acta", salidaHandler.Acta)
	salidas.Delete("/:id", salidaHandler.Delete)
}
