package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/application/saga"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
)

const (
	msgUserRequired    = "Email, password y username son requeridos"
	msgUserInvalidRole = "Rol inválido"
	msgUserDuplicate   = "Ya existe un usuario con este username o email"
	msgUserNotFound    = "Usuario no encontrado"
	msgUserSelf        = "No puedes desactivar tu propio usuario"
)

// UserUseCase directorio de usuarios administrado por admins. Las cuentas viven en el proveedor
// de identidad y la fila del directorio guarda su auth_uid.
type UserUseCase struct {
	provider auth.IdentityProvider
	users    repository.UserRepository
	log      *logger.Logger
	recorder saga.Recorder
}

// NewUserUseCase construye el caso de uso. recorder puede ser nil.
func NewUserUseCase(provider auth.IdentityProvider, users repository.UserRepository, log *logger.Logger, recorder saga.Recorder) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{provider: provider, users: users, log: log, recorder: recorder}
}

// CreateUser crea la cuenta en el proveedor y luego la fila del directorio. Si la fila falla,
// la cuenta del proveedor se borra antes de devolver el error.
func (uc *UserUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)
	if email == "" || in.Password == "" || username == "" {
		return nil, domain.Validation(msgUserRequired)
	}
	role := strings.TrimSpace(in.Rol)
	if role == "" {
		role = entity.RoleUsuario
	}
	if !entity.ValidRole(role) {
		return nil, domain.Validation(msgUserInvalidRole)
	}

	identity, err := uc.provider.CreateUser(ctx, email, in.Password)
	if err != nil {
		var pe *auth.ProviderError
		if errors.As(err, &pe) {
			return nil, &domain.Error{Kind: domain.ErrInvalidInput, Message: pe.Message, Cause: err}
		}
		return nil, fmt.Errorf("crear cuenta en proveedor: %w", err)
	}

	sg := saga.New("admin_create_user", uc.log, uc.recorder)
	sg.Add("provider_account", func(ctx context.Context) error {
		return uc.provider.DeleteUser(ctx, identity.Subject)
	})

	user := &entity.User{
		AuthUID:  identity.Subject,
		Username: username,
		Email:    email,
		Nombre:   strings.TrimSpace(in.Nombre),
		Apellido: strings.TrimSpace(in.Apellido),
		Role:     role,
		Active:   true,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		_ = sg.Compensate(ctx, err)
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Conflict(msgUserDuplicate)
		}
		return nil, fmt.Errorf("crear usuario en directorio: %w", err)
	}
	sg.Complete()

	uc.log.Info().
		Int64("user_id", user.ID).
		Str("auth_uid", user.AuthUID).
		Str("rol", user.Role).
		Msg("usuario creado")
	out := dto.FromUser(user)
	return &out, nil
}

// ListUsers devuelve el directorio, más recientes primero.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	us, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(us), nil
}

// DeactivateUser desactiva una fila del directorio. Un admin no puede desactivarse a sí mismo.
func (uc *UserUseCase) DeactivateUser(ctx context.Context, actor *entity.User, id int64) (*dto.UserResponse, error) {
	if actor != nil && actor.ID == id {
		return nil, domain.Validation(msgUserSelf)
	}
	return uc.setActive(ctx, id, false)
}

// ActivateUser reactiva una fila del directorio.
func (uc *UserUseCase) ActivateUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	return uc.setActive(ctx, id, true)
}

func (uc *UserUseCase) setActive(ctx context.Context, id int64, active bool) (*dto.UserResponse, error) {
	u, err := uc.users.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound(msgUserNotFound)
	}
	out := dto.FromUser(u)
	return &out, nil
}
