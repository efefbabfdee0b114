// Package auth resuelve la identidad del llamador contra el proveedor externo y el directorio interno.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
)

// Mensajes expuestos al cliente.
const (
	MsgTokenRequired    = "Token de autorización requerido"
	MsgTokenInvalid     = "Token inválido o expirado"
	MsgAdminRequired    = "Se requieren permisos de administrador"
	MsgUserNotFound     = "Usuario no encontrado"
	MsgUserNotInDB      = "Usuario no encontrado en la base de datos"
	MsgCredentialsEmpty = "Email y password son requeridos"
)

// Gateway autentica bearer tokens y autoriza administradores. No cachea identidades:
// cada petición consulta al proveedor.
type Gateway struct {
	provider IdentityProvider
	users    repository.UserRepository
	log      *logger.Logger
}

// NewGateway construye el gateway de identidad.
func NewGateway(provider IdentityProvider, users repository.UserRepository, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{provider: provider, users: users, log: log}
}

// BearerToken extrae el token del header Authorization ("Bearer <token>").
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// Authenticate intercambia el token con el proveedor. Token vacío -> ErrUnauthenticated;
// rechazo o fallo del proveedor -> ErrInvalidToken.
func (g *Gateway) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domain.Unauthenticated(MsgTokenRequired)
	}
	identity, err := g.provider.GetUser(ctx, token)
	if err != nil {
		g.log.Debug().Err(err).Msg("token rechazado por el proveedor")
		return nil, domain.InvalidToken(MsgTokenInvalid, err)
	}
	if identity == nil || identity.Subject == "" {
		return nil, domain.InvalidToken(MsgTokenInvalid, nil)
	}
	return identity, nil
}

// AuthorizeAdmin exige una fila en usuarios con rol admin para el sujeto autenticado.
func (g *Gateway) AuthorizeAdmin(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	if identity == nil {
		return nil, domain.Unauthenticated(MsgTokenRequired)
	}
	u, err := g.users.GetByAuthUID(ctx, identity.Subject)
	if err != nil {
		return nil, fmt.Errorf("verificar permisos: %w", err)
	}
	if !u.IsAdmin() {
		return nil, domain.Forbidden(MsgAdminRequired)
	}
	return u, nil
}

// ResolveUser devuelve la fila del directorio para la identidad.
func (g *Gateway) ResolveUser(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	return g.lookup(ctx, identity, MsgUserNotFound)
}

// Verify devuelve el usuario del directorio con el email que informa el proveedor.
func (g *Gateway) Verify(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	u, err := g.lookup(ctx, identity, MsgUserNotInDB)
	if err != nil {
		return nil, err
	}
	if identity.Email != "" {
		u.Email = identity.Email
	}
	return u, nil
}

// Profile fila del directorio tal cual está guardada.
func (g *Gateway) Profile(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	return g.lookup(ctx, identity, MsgUserNotFound)
}

func (g *Gateway) lookup(ctx context.Context, identity *entity.Identity, notFound string) (*entity.User, error) {
	if identity == nil {
		return nil, domain.Unauthenticated(MsgTokenRequired)
	}
	u, err := g.users.GetByAuthUID(ctx, identity.Subject)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if u == nil {
		return nil, domain.NotFound(notFound)
	}
	return u, nil
}

// SignIn inicia sesión en el proveedor. Credenciales rechazadas -> ErrInvalidInput con el mensaje del proveedor.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.Validation(MsgCredentialsEmpty)
	}
	session, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		var pe *ProviderError
		if errors.As(err, &pe) {
			return nil, &domain.Error{Kind: domain.ErrInvalidInput, Message: pe.Message, Cause: err}
		}
		return nil, fmt.Errorf("iniciar sesión: %w", err)
	}
	return session, nil
}
