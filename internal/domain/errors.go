package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrForeignKey        = errors.New("referencia inexistente")
	ErrUnauthenticated   = errors.New("no autenticado")
	ErrInvalidToken      = errors.New("token inválido")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// Error error de dominio con mensaje para el cliente. Unwrap devuelve el sentinel de su categoría,
// de modo que errors.Is(err, ErrConflict) sigue funcionando tras envolverlo.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap expone la categoría y la causa.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// Validation error de entrada (HTTP 400).
func Validation(msg string) error { return &Error{Kind: ErrInvalidInput, Message: msg} }

// Conflict violación de unicidad o de integridad (HTTP 400).
func Conflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

// NotFound recurso inexistente (HTTP 404).
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Forbidden falta de permisos (HTTP 403).
func Forbidden(msg string) error { return &Error{Kind: ErrForbidden, Message: msg} }

// Unauthenticated sin credencial (HTTP 401).
func Unauthenticated(msg string) error { return &Error{Kind: ErrUnauthenticated, Message: msg} }

// InvalidToken credencial rechazada (HTTP 401). cause puede ser nil.
func InvalidToken(msg string, cause error) error {
	return &Error{Kind: ErrInvalidToken, Message: msg, Cause: cause}
}

// MessageOf devuelve el mensaje para el cliente si err es (o envuelve) un *Error.
func MessageOf(err error) (string, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Message, true
	}
	return "", false
}
