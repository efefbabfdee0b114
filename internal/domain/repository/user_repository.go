package repository

import (
	"context"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

// UserRepository puerto de persistencia del directorio de usuarios.
// Las lecturas devuelven (nil, nil) si no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByAuthUID(ctx context.Context, authUID string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// SetActive cambia el flag activo y devuelve la fila actualizada (nil si no existe).
	SetActive(ctx context.Context, id int64, active bool) (*entity.User, error)
}

// CredentialRepository credenciales del proveedor de identidad local.
type CredentialRepository interface {
	Create(ctx context.Context, cred *entity.Credential) error
	GetByEmail(ctx context.Context, email string) (*entity.Credential, error)
	GetByAuthUID(ctx context.Context, authUID string) (*entity.Credential, error)
	Delete(ctx context.Context, authUID string) error
}
