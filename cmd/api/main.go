package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/application/inventory"
	"github.com/jhoicas/inventario-lotes-api/internal/application/usecase"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/identity/local"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/identity/supabase"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventario-lotes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/inventario-lotes-api/internal/infrastructure/redis"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/inventario-lotes-api/internal/interfaces/http"
	"github.com/jhoicas/inventario-lotes-api/pkg/config"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
	"github.com/jhoicas/inventario-lotes-api/pkg/metrics"

	_ "github.com/jhoicas/inventario-lotes-api/docs"
)

// @title                       Inventario por Lotes API
// @version                     1.0
// @description                 Productos, categorías, lotes con vencimiento, entradas y salidas por acta.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	decimal.MarshalJSONWithoutQuotes = true

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.DB.Driver).
		Str("auth", cfg.Auth.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacenamiento
	var repos repository.Set
	switch cfg.DB.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		repos = memory.NewSet(memory.NewStore())
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repos = postgres.NewSet(pool)
	}

	// Proveedor de identidad
	var provider auth.IdentityProvider
	switch cfg.Auth.Provider {
	case config.AuthProviderLocal:
		provider = local.New(repos.Credentials, local.Config{
			Secret:       cfg.Auth.JWTSecret,
			Issuer:       cfg.Auth.JWTIssuer,
			TokenMinutes: cfg.Auth.TokenMinutes,
		})
	default:
		provider = supabase.New(supabase.Config{
			URL:            cfg.Auth.SupabaseURL,
			ServiceRoleKey: cfg.Auth.ServiceRoleKey,
			AnonKey:        cfg.Auth.AnonKey,
			Timeout:        cfg.Auth.RequestTimeout,
		})
	}

	// Redis opcional para el límite de /auth/token
	var limiter httpRouter.RateLimiter
	if cfg.Redis.Enabled() {
		rl, err := infraredis.New(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, límite de peticiones deshabilitado")
		} else {
			defer rl.Close()
			limiter = rl
		}
	}

	// Métricas
	var metricsHandler http.Handler
	m := metrics.New(nil)
	if cfg.Metrics.Enabled {
		reg := metrics.NewRegistry()
		m = metrics.New(reg)
		metricsHandler = metrics.Handler(reg)
	}

	gateway := auth.NewGateway(provider, repos.Users, log.Named("auth"))
	invOpts := inventory.Options{
		Policy:   cfg.Inventory,
		Log:      log.Named("inventory"),
		Metrics:  m,
		Renderer: infrapdf.NewMarotoActaGenerator(cfg.App.Name),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ProxyHeader:  fiber.HeaderXForwardedFor,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Named("http"), m))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerEnabled {
		if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    "Inventario por Lotes API",
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Gateway:                gateway,
		CategoryUC:             usecase.NewCategoryUseCase(repos.Categories),
		ProductUC:              usecase.NewProductUseCase(repos.Products, repos.Categories, gateway, xlsx.NewStockExporter(), nil),
		LotUC:                  usecase.NewLotUseCase(repos.Lots, gateway, nil),
		UserUC:                 usecase.NewUserUseCase(provider, repos.Users, log.Named("admin"), m),
		EntradaUC:              inventory.NewEntradaUseCase(repos, gateway, invOpts),
		SalidaUC:               inventory.NewSalidaUseCase(repos, gateway, invOpts),
		TokenEndpointEnabled:   cfg.Auth.TokenEndpointEnabled,
		TokenRequestsPerMinute: cfg.RateLimit.TokenRequestsPerMinute,
		Limiter:                limiter,
		MetricsHandler:         metricsHandler,
		MetricsPath:            cfg.Metrics.Path,
		Log:                    log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
