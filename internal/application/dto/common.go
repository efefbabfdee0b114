package dto

import "time"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse confirmación de operaciones sin cuerpo propio (borrados, activaciones).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ActaSuggestionResponse sugerencia del próximo número de acta.
type ActaSuggestionResponse struct {
	Sugerencia string `json:"sugerencia"`
}

// UserSummaryResponse datos del usuario creador o registrador en lecturas con join.
type UserSummaryResponse struct {
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}
