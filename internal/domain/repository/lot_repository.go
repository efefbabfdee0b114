package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LotRepository puerto de persistencia de lotes. Las lecturas incluyen producto y creador.
type LotRepository interface {
	// List ordena por fecha de vencimiento ascendente.
	List(ctx context.Context) ([]*entity.Lot, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Lot, error)
	GetByID(ctx context.Context, id int64) (*entity.Lot, error)
	// Create devuelve domain.ErrDuplicate (número de lote) o domain.ErrForeignKey (producto).
	Create(ctx context.Context, l *entity.Lot) error
	// Update modifica número, vencimiento y estado. domain.ErrNotFound o domain.ErrDuplicate.
	Update(ctx context.Context, l *entity.Lot) error
	// Delete devuelve domain.ErrNotFound o domain.ErrForeignKey si hay detalles de movimiento.
	Delete(ctx context.Context, id int64) error
	// ListExpiring lotes con estado disponible cuyo vencimiento está en [from, to], ascendente.
	ListExpiring(ctx context.Context, from, to time.Time) ([]*entity.Lot, error)
	// DebitStock descuenta qty solo si stock_actual >= qty. Devuelve false si no alcanzó.
	DebitStock(ctx context.Context, id int64, qty decimal.Decimal) (bool, error)
	CreditStock(ctx context.Context, id int64, qty decimal.Decimal) error
}
