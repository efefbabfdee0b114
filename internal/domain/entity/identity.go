package entity

import "time"

// Identity resultado de validar un bearer token contra el proveedor de identidad.
type Identity struct {
	Subject string // auth_uid
	Email   string
}

// Session token emitido por el proveedor al iniciar sesión con email y contraseña.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	Identity    Identity
}

// Credential credencial del proveedor local (solo AUTH_PROVIDER=local).
type Credential struct {
	AuthUID      string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
