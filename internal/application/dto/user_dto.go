package dto

import "time"

// CreateUserRequest body de POST /admin/users. La contraseña la guarda el proveedor de identidad.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	Username string `json:"username" validate:"max=60"`
	Nombre   string `json:"nombre" validate:"max=120"`
	Apellido string `json:"apellido" validate:"max=120"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin usuario"`
}

// UserResponse fila del directorio de usuarios.
type UserResponse struct {
	IDUsuario     int64     `json:"id_usuario"`
	AuthUID       string    `json:"auth_uid"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Rol           string    `json:"rol"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// UserListResponse GET /admin/users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// UserCreatedResponse POST /admin/users.
type UserCreatedResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// UserStatusResponse PUT /admin/users/:userId/activate|deactivate.
type UserStatusResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// VerifiedUser usuario autenticado tal como lo devuelve GET /auth/verify.
type VerifiedUser struct {
	ID            int64     `json:"id"`
	AuthUID       string    `json:"auth_uid"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Rol           string    `json:"rol"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// VerifyResponse GET /auth/verify.
type VerifyResponse struct {
	User VerifiedUser `json:"user"`
}

// ProfileResponse GET /auth/profile.
type ProfileResponse struct {
	Usuario UserResponse `json:"usuario"`
}

// TokenRequest body de POST /auth/token.
type TokenRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// TokenUser sujeto de la sesión emitida.
type TokenUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenResponse POST /auth/token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        TokenUser `json:"user"`
}
