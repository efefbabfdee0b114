package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

// IdentityProvider puerto hacia el proveedor de identidad externo (Supabase Auth o local).
type IdentityProvider interface {
	// GetUser valida el access token y devuelve el sujeto. Error si el proveedor lo rechaza.
	GetUser(ctx context.Context, accessToken string) (*entity.Identity, error)
	// CreateUser crea una cuenta con email confirmado.
	CreateUser(ctx context.Context, email, password string) (*entity.Identity, error)
	DeleteUser(ctx context.Context, authUID string) error
	// SignIn inicia sesión con email y contraseña.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
}

// ProviderError respuesta 4xx del proveedor; Message es apto para el cliente.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("proveedor de identidad (%d): %s", e.Status, e.Message)
}
