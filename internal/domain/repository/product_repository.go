package repository

import (
	"context"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	// List devuelve los productos con categoría y creador, más recientes primero.
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve el producto con categoría, creador y lotes.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// Create devuelve domain.ErrDuplicate si el código existe.
	Create(ctx context.Context, p *entity.Product) error
	// Update devuelve domain.ErrNotFound o domain.ErrDuplicate.
	Update(ctx context.Context, p *entity.Product) error
	// Delete devuelve domain.ErrNotFound si no existe y domain.ErrForeignKey si tiene lotes.
	Delete(ctx context.Context, id int64) error
	CountLots(ctx context.Context, id int64) (int, error)
	// ListActiveWithLots devuelve los productos activos que tienen al menos un lote, con categoría y lotes.
	ListActiveWithLots(ctx context.Context) ([]*entity.Product, error)
}
