package repository

import (
	"context"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia de categorías.
// Create y Update devuelven domain.ErrDuplicate si el nombre ya existe.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Create(ctx context.Context, c *entity.Category) error
	// Update devuelve domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, c *entity.Category) error
	// Delete devuelve domain.ErrNotFound si el id no existe y domain.ErrForeignKey si hay productos.
	Delete(ctx context.Context, id int64) error
	CountProducts(ctx context.Context, id int64) (int, error)
}
