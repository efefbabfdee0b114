// Package supabase implementa auth.IdentityProvider contra la API GoTrue de Supabase Auth.
package supabase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

var _ auth.IdentityProvider = (*Client)(nil)

const defaultTimeout = 10 * time.Second

// jsonContentType las respuestas con cuerpo se decodifican como JSON sin mirar la cabecera.
const jsonContentType = "application/json"

// Config credenciales del proyecto Supabase.
type Config struct {
	URL            string
	ServiceRoleKey string
	AnonKey        string // para SignIn; si está vacío se usa ServiceRoleKey
	Timeout        time.Duration
}

// Client cliente GoTrue. Las operaciones de administración usan la service role key.
type Client struct {
	http       *resty.Client
	serviceKey string
	anonKey    string
}

// New construye el cliente HTTP con la URL base del proyecto.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	anon := cfg.AnonKey
	if anon == "" {
		anon = cfg.ServiceRoleKey
	}
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.URL).
			SetTimeout(timeout).
			SetHeader("Content-Type", jsonContentType).
			SetHeader("Accept", jsonContentType),
		serviceKey: cfg.ServiceRoleKey,
		anonKey:    anon,
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	ExpiresAt   int64        `json:"expires_at"`
	User        userResponse `json:"user"`
}

// errorResponse GoTrue responde con msg, message o error_description según el endpoint y la versión.
type errorResponse struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (e *errorResponse) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// admin request autenticada con la service role key.
func (c *Client) admin(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader("apikey", c.serviceKey).
		SetAuthToken(c.serviceKey).
		SetError(&errorResponse{})
}

// GetUser valida el access token del usuario (GET /auth/v1/user).
func (c *Client) GetUser(ctx context.Context, accessToken string) (*entity.Identity, error) {
	var out userResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("apikey", c.serviceKey).
		SetAuthToken(accessToken).
		ForceContentType(jsonContentType).
		SetResult(&out).
		SetError(&errorResponse{}).
		Get("/auth/v1/user")
	if err := check(resp, err, "get user"); err != nil {
		return nil, err
	}
	return identityFrom(out, "get user")
}

// CreateUser crea la cuenta con email confirmado (POST /auth/v1/admin/users).
func (c *Client) CreateUser(ctx context.Context, email, password string) (*entity.Identity, error) {
	var out userResponse
	resp, err := c.admin(ctx).
		SetBody(map[string]any{
			"email":         email,
			"password":      password,
			"email_confirm": true,
		}).
		ForceContentType(jsonContentType).
		SetResult(&out).
		Post("/auth/v1/admin/users")
	if err := check(resp, err, "create user"); err != nil {
		return nil, err
	}
	return identityFrom(out, "create user")
}

// DeleteUser borra la cuenta (DELETE /auth/v1/admin/users/{id}).
func (c *Client) DeleteUser(ctx context.Context, authUID string) error {
	resp, err := c.admin(ctx).
		SetPathParam("id", authUID).
		Delete("/auth/v1/admin/users/{id}")
	return check(resp, err, "delete user")
}

// SignIn inicia sesión con la anon key (POST /auth/v1/token?grant_type=password).
func (c *Client) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	var out sessionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		ForceContentType(jsonContentType).
		SetResult(&out).
		SetError(&errorResponse{}).
		Post("/auth/v1/token")
	if err := check(resp, err, "sign in"); err != nil {
		return nil, err
	}
	if out.AccessToken == "" || out.User.ID == "" {
		return nil, fmt.Errorf("supabase sign in: respuesta sin access_token o id de usuario")
	}
	expires := time.Unix(out.ExpiresAt, 0)
	if out.ExpiresAt == 0 {
		expires = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	}
	return &entity.Session{
		AccessToken: out.AccessToken,
		ExpiresAt:   expires,
		Identity:    entity.Identity{Subject: out.User.ID, Email: out.User.Email},
	}, nil
}

// identityFrom falla si la respuesta no trae el id de la cuenta.
func identityFrom(u userResponse, op string) (*entity.Identity, error) {
	if u.ID == "" {
		return nil, fmt.Errorf("supabase %s: respuesta sin id de usuario", op)
	}
	return &entity.Identity{Subject: u.ID, Email: u.Email}, nil
}

// check convierte respuestas 4xx en *auth.ProviderError y el resto de fallos en errores opacos.
func check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("supabase %s: %w", op, err)
	}
	if !resp.IsError() {
		return nil
	}
	msg := http.StatusText(resp.StatusCode())
	if e, ok := resp.Error().(*errorResponse); ok && e.text() != "" {
		msg = e.text()
	}
	if resp.StatusCode() < http.StatusInternalServerError {
		return &auth.ProviderError{Status: resp.StatusCode(), Message: msg}
	}
	return fmt.Errorf("supabase %s: status %d: %s", op, resp.StatusCode(), msg)
}
