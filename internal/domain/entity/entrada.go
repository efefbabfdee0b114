package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entrada encabezado de un movimiento de ingreso. NumeroActa es único entre entradas.
type Entrada struct {
	ID           int64
	ActaNumber   string
	Date         time.Time
	Supplier     string
	Attachment   string // referencia opcional al archivo del acta
	RegisteredBy int64
	CreatedAt    time.Time

	Registrar *UserSummary
	Lines     []EntradaLine
}

// EntradaLine detalle de una entrada: lote recibido y cantidad.
type EntradaLine struct {
	ID           int64
	EntradaID    int64
	LotID        int64
	Quantity     decimal.Decimal
	RegisteredBy int64

	Lot *Lot
}
