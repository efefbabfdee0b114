package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote.
const (
	LotStatusAvailable = "disponible"
	LotStatusDepleted  = "agotado"
	LotStatusExpired   = "vencido"
	LotStatusBlocked   = "bloqueado"
)

// ValidLotStatus valida el estado contra los valores permitidos.
func ValidLotStatus(s string) bool {
	switch s {
	case LotStatusAvailable, LotStatusDepleted, LotStatusExpired, LotStatusBlocked:
		return true
	}
	return false
}

// Lot lote recibido de un producto. CurrentStock arranca en InitialQuantity y solo lo reducen salidas.
type Lot struct {
	ID              int64
	ProductID       int64
	Number          string
	ExpiryDate      time.Time // fecha sin hora (UTC)
	InitialQuantity decimal.Decimal
	CurrentStock    decimal.Decimal
	Status          string
	CreatorID       *int64
	CreatedAt       time.Time

	Product *Product
	Creator *UserSummary
}

// HasMovements indica si el lote ya tuvo salidas (stock distinto de la cantidad inicial).
func (l *Lot) HasMovements() bool {
	return !l.CurrentStock.Equal(l.InitialQuantity)
}
