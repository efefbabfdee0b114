// Package local implementa auth.IdentityProvider sin servicio externo: contraseñas con bcrypt
// en credenciales_locales y access tokens HS256 firmados con JWT_SECRET.
package local

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
	"github.com/jhoicas/inventario-lotes-api/pkg/jwt"
)

var _ auth.IdentityProvider = (*Provider)(nil)

const minPasswordLength = 6

// Mensajes con el mismo texto que devuelve GoTrue.
const (
	msgInvalidJWT     = "invalid JWT"
	msgEmailTaken     = "A user with this email address has already been registered"
	msgWeakPassword   = "Password should be at least 6 characters"
	msgBadCredentials = "Invalid login credentials"
	msgUserNotFound   = "User not found"
)

// Config parámetros de firma de tokens.
type Config struct {
	Secret       string
	Issuer       string
	TokenMinutes int
}

// Provider proveedor de identidad local.
type Provider struct {
	creds repository.CredentialRepository
	cfg   Config
}

// New construye el proveedor sobre el repositorio de credenciales.
func New(creds repository.CredentialRepository, cfg Config) *Provider {
	if cfg.TokenMinutes <= 0 {
		cfg.TokenMinutes = 60
	}
	return &Provider{creds: creds, cfg: cfg}
}

// GetUser valida firma, emisor y expiración, y que la cuenta siga existiendo.
func (p *Provider) GetUser(ctx context.Context, accessToken string) (*entity.Identity, error) {
	claims, err := jwt.Parse(p.cfg.Secret, p.cfg.Issuer, accessToken)
	if err != nil {
		return nil, &auth.ProviderError{Status: http.StatusUnauthorized, Message: msgInvalidJWT}
	}
	cred, err := p.creds.GetByAuthUID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("buscar credencial: %w", err)
	}
	if cred == nil {
		return nil, &auth.ProviderError{Status: http.StatusUnauthorized, Message: msgUserNotFound}
	}
	return &entity.Identity{Subject: cred.AuthUID, Email: cred.Email}, nil
}

// CreateUser registra la credencial con un auth_uid nuevo.
func (p *Provider) CreateUser(ctx context.Context, email, password string) (*entity.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < minPasswordLength {
		return nil, &auth.ProviderError{Status: http.StatusUnprocessableEntity, Message: msgWeakPassword}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	cred := &entity.Credential{AuthUID: uuid.NewString(), Email: email, PasswordHash: string(hash)}
	if err := p.creds.Create(ctx, cred); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, &auth.ProviderError{Status: http.StatusUnprocessableEntity, Message: msgEmailTaken}
		}
		return nil, fmt.Errorf("guardar credencial: %w", err)
	}
	return &entity.Identity{Subject: cred.AuthUID, Email: cred.Email}, nil
}

func (p *Provider) DeleteUser(ctx context.Context, authUID string) error {
	if err := p.creds.Delete(ctx, authUID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &auth.ProviderError{Status: http.StatusNotFound, Message: msgUserNotFound}
		}
		return fmt.Errorf("borrar credencial: %w", err)
	}
	return nil
}

// SignIn compara la contraseña con bcrypt y firma un access token.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	cred, err := p.creds.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("buscar credencial: %w", err)
	}
	if cred == nil || bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return nil, &auth.ProviderError{Status: http.StatusBadRequest, Message: msgBadCredentials}
	}
	token, exp, err := jwt.Generate(p.cfg.Secret, cred.AuthUID, cred.Email, p.cfg.Issuer, p.cfg.TokenMinutes)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}
	return &entity.Session{
		AccessToken: token,
		ExpiresAt:   exp,
		Identity:    entity.Identity{Subject: cred.AuthUID, Email: cred.Email},
	}, nil
}
