// create_super_admin crea el primer administrador: cuenta en el proveedor de identidad y fila en usuarios.
// Si la fila falla, la cuenta del proveedor se elimina.
//
// Uso: go run ./cmd/create_super_admin -email admin@empresa.com -password '...' [-username superadmin]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/application/usecase"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/identity/local"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/identity/supabase"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-lotes-api/pkg/config"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", os.Getenv("SUPER_ADMIN_EMAIL"), "email del administrador")
	password := flag.String("password", os.Getenv("SUPER_ADMIN_PASSWORD"), "contraseña")
	username := flag.String("username", "superadmin", "username")
	nombre := flag.String("nombre", "Super", "nombre")
	apellido := flag.String("apellido", "Administrador", "apellido")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.Driver != config.StoreDriverPostgres {
		fmt.Fprintln(os.Stderr, "create_super_admin requiere STORE_DRIVER=postgres")
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "create_super_admin"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	repos := postgres.NewSet(pool)

	var provider auth.IdentityProvider
	if cfg.Auth.Provider == config.AuthProviderLocal {
		provider = local.New(repos.Credentials, local.Config{
			Secret:       cfg.Auth.JWTSecret,
			Issuer:       cfg.Auth.JWTIssuer,
			TokenMinutes: cfg.Auth.TokenMinutes,
		})
	} else {
		provider = supabase.New(supabase.Config{
			URL:            cfg.Auth.SupabaseURL,
			ServiceRoleKey: cfg.Auth.ServiceRoleKey,
			AnonKey:        cfg.Auth.AnonKey,
			Timeout:        cfg.Auth.RequestTimeout,
		})
	}

	uc := usecase.NewUserUseCase(provider, repos.Users, log, nil)
	out, err := uc.CreateUser(ctx, dto.CreateUserRequest{
		Email:    *email,
		Password: *password,
		Username: *username,
		Nombre:   *nombre,
		Apellido: *apellido,
		Rol:      entity.RoleAdmin,
	})
	if err != nil {
		if msg, ok := domain.MessageOf(err); ok {
			log.Error().Err(err).Msg(msg)
		} else {
			log.Error().Err(err).Msg("crear super administrador")
		}
		os.Exit(1)
	}

	log.Info().
		Int64("id_usuario", out.IDUsuario).
		Str("email", out.Email).
		Str("username", out.Username).
		Str("auth_uid", out.AuthUID).
		Msg("super administrador creado")
}
