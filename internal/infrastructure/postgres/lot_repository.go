package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre la tabla lotes.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes.
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

func (r *LotRepo) List(ctx context.Context) ([]*entity.Lot, error) {
	return r.query(ctx, lotSelect+` ORDER BY l.fecha_vencimiento, l.id_lote`)
}

func (r *LotRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Lot, error) {
	return r.query(ctx, lotSelect+` WHERE l.id_producto = $1 ORDER BY l.fecha_vencimiento, l.id_lote`, productID)
}

func (r *LotRepo) ListExpiring(ctx context.Context, from, to time.Time) ([]*entity.Lot, error) {
	return r.query(ctx, lotSelect+`
		WHERE l.estado = $1 AND l.fecha_vencimiento BETWEEN $2 AND $3
		ORDER BY l.fecha_vencimiento, l.id_lote`, entity.LotStatusAvailable, from, to)
}

func (r *LotRepo) query(ctx context.Context, sql string, args ...any) ([]*entity.Lot, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	lots, err := collectLots(rows)
	if err != nil {
		return nil, fmt.Errorf("scan lote: %w", err)
	}
	return lots, nil
}

func (r *LotRepo) GetByID(ctx context.Context, id int64) (*entity.Lot, error) {
	l, err := scanLot(r.q.QueryRow(ctx, lotSelect+` WHERE l.id_lote = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return l, nil
}

// Create inserta el lote con stock_actual = cantidad_inicial cuando CurrentStock viene en cero.
func (r *LotRepo) Create(ctx context.Context, l *entity.Lot) error {
	if l.CurrentStock.IsZero() {
		l.CurrentStock = l.InitialQuantity
	}
	if l.Status == "" {
		l.Status = entity.LotStatusAvailable
	}
	query := `
		INSERT INTO lotes (id_producto, numero_lote, fecha_vencimiento, cantidad_inicial, stock_actual, estado, id_usuario_creador)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_lote, fecha_creacion`
	err := r.q.QueryRow(ctx, query, l.ProductID, l.Number, l.ExpiryDate, l.InitialQuantity,
		l.CurrentStock, l.Status, l.CreatorID).Scan(&l.ID, &l.CreatedAt)
	return translate("insert lote", err)
}

func (r *LotRepo) Update(ctx context.Context, l *entity.Lot) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE lotes SET numero_lote = $2, fecha_vencimiento = $3, estado = $4
		WHERE id_lote = $1`, l.ID, l.Number, l.ExpiryDate, l.Status)
	if err != nil {
		return translate("update lote", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete falla con domain.ErrForeignKey si algún detalle de entrada o salida lo referencia.
func (r *LotRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM lotes WHERE id_lote = $1`, id)
	if err != nil {
		return translate("delete lote", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DebitStock descuenta de forma condicional en una sola sentencia; el lote pasa a agotado si llega a cero.
func (r *LotRepo) DebitStock(ctx context.Context, id int64, qty decimal.Decimal) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE lotes
		SET stock_actual = stock_actual - $2,
		    estado = CASE WHEN stock_actual - $2 = 0 THEN 'agotado' ELSE estado END
		WHERE id_lote = $1 AND stock_actual >= $2`, id, qty)
	if err != nil {
		return false, translate("debit stock", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CreditStock devuelve stock descontado; un lote agotado vuelve a disponible.
func (r *LotRepo) CreditStock(ctx context.Context, id int64, qty decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE lotes
		SET stock_actual = stock_actual + $2,
		    estado = CASE WHEN estado = 'agotado' THEN 'disponible' ELSE estado END
		WHERE id_lote = $1`, id, qty)
	if err != nil {
		return translate("credit stock", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
