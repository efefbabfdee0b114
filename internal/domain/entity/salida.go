package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salida encabezado de un movimiento de egreso. NumeroActa es único entre salidas.
type Salida struct {
	ID           int64
	ActaNumber   string
	Date         time.Time
	Beneficiary  string
	Place        string
	RegisteredBy int64
	CreatedAt    time.Time

	Registrar *UserSummary
	Lines     []SalidaLine
}

// SalidaLine detalle de una salida: lote existente y cantidad retirada.
type SalidaLine struct {
	ID           int64
	SalidaID     int64
	LotID        int64
	Quantity     decimal.Decimal
	RegisteredBy int64

	Lot *Lot
}
