package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ExpiringWindowDays umbral en días para el estado "por_vencer" y valor por defecto de las alertas.
const ExpiringWindowDays = 30

// ExpiryStatusFor clasifica los días restantes: <0 vencido, <=30 por_vencer, resto vigente.
func ExpiryStatusFor(days int) string {
	switch {
	case days < 0:
		return entity.ExpiryStatusExpired
	case days <= ExpiringWindowDays:
		return entity.ExpiryStatusExpiring
	default:
		return entity.ExpiryStatusValid
	}
}

// ValidateExpiry exige que la fecha de vencimiento sea estrictamente posterior a hoy.
func ValidateExpiry(expiry, today time.Time) error {
	if !DateOnly(expiry).After(DateOnly(today)) {
		return domain.Validation("La fecha de vencimiento debe ser futura")
	}
	return nil
}

// ValidateQuantity exige una cantidad inicial positiva.
func ValidateQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return domain.Validation("La cantidad inicial debe ser mayor a 0")
	}
	return nil
}

// CanDeleteLot rechaza el borrado de lotes con movimientos.
func CanDeleteLot(l *entity.Lot) error {
	if l.HasMovements() {
		return domain.Conflict("No se puede eliminar el lote porque tiene movimientos de stock")
	}
	return nil
}

// HasStockFor verifica que el lote cubra la cantidad solicitada.
func HasStockFor(l *entity.Lot, qty decimal.Decimal) error {
	if qty.GreaterThan(l.CurrentStock) {
		return &domain.Error{
			Kind: domain.ErrInvalidInput,
			Message: fmt.Sprintf("Stock insuficiente en lote %s. Disponible: %s, Solicitado: %s",
				l.Number, l.CurrentStock.String(), qty.String()),
			Cause: domain.ErrInsufficientStock,
		}
	}
	return nil
}

// BuildStockEntries aplana productos con sus lotes en filas de la vista de stock.
// Omite lotes sin existencias y ordena por nombre de producto y luego por vencimiento.
func BuildStockEntries(products []*entity.Product, today time.Time) []entity.StockEntry {
	out := make([]entity.StockEntry, 0, len(products))
	for _, p := range products {
		for _, l := range p.Lots {
			if !l.CurrentStock.IsPositive() {
				continue
			}
			days := DaysUntil(l.ExpiryDate, today)
			out = append(out, entity.StockEntry{
				Product:         p,
				Lot:             l,
				DaysUntilExpiry: days,
				ExpiryStatus:    ExpiryStatusFor(days),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Product.Name != out[j].Product.Name {
			return out[i].Product.Name < out[j].Product.Name
		}
		return out[i].Lot.ExpiryDate.Before(out[j].Lot.ExpiryDate)
	})
	return out
}
