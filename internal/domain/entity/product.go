package entity

import "time"

// Product artículo del inventario. El código es único; la categoría puede ser nula
// cuando el producto se creó desde una entrada con una categoría inexistente.
type Product struct {
	ID          int64
	Code        string
	Name        string
	Description string
	Active      bool
	CategoryID  *int64
	CreatorID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relaciones cargadas por los repositorios en lecturas con join.
	Category *Category
	Creator  *UserSummary
	Lots     []Lot
}
