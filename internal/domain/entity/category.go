package entity

import "time"

// Category categoría de productos. El nombre es único.
type Category struct {
	ID          int64
	Name        string
	Description string
	Active      bool
	UpdatedAt   time.Time
}
