package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleUsuario = "usuario"
)

// User fila del directorio interno de usuarios (tabla usuarios).
// AuthUID es el sujeto del proveedor de identidad; nunca se borra, solo se desactiva.
type User struct {
	ID        int64
	AuthUID   string
	Username  string
	Email     string
	Nombre    string
	Apellido  string
	Role      string // admin, usuario
	Active    bool
	CreatedAt time.Time
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ValidRole valida el rol contra los valores permitidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUsuario
}

// UserSummary datos del usuario que se incluyen al unir otras tablas (creador, registrador).
type UserSummary struct {
	Username string
	Nombre   string
	Apellido string
}
