package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLotRequest body de POST /lotes. fecha_vencimiento en formato YYYY-MM-DD.
type CreateLotRequest struct {
	IDProducto       int64           `json:"id_producto"`
	NumeroLote       string          `json:"numero_lote" validate:"max=80"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	CantidadInicial  decimal.Decimal `json:"cantidad_inicial"`
}

// UpdateLotRequest body de PUT /lotes/:id.
type UpdateLotRequest struct {
	NumeroLote       *string `json:"numero_lote" validate:"omitempty,min=1,max=80"`
	FechaVencimiento *string `json:"fecha_vencimiento"`
	Estado           *string `json:"estado" validate:"omitempty,oneof=disponible agotado vencido bloqueado"`
}

// LotResponse lote con su producto y creador.
type LotResponse struct {
	IDLote           int64                `json:"id_lote"`
	IDProducto       int64                `json:"id_producto"`
	NumeroLote       string               `json:"numero_lote"`
	FechaVencimiento string               `json:"fecha_vencimiento"`
	CantidadInicial  decimal.Decimal      `json:"cantidad_inicial"`
	StockActual      decimal.Decimal      `json:"stock_actual"`
	Estado           string               `json:"estado"`
	IDUsuarioCreador *int64               `json:"id_usuario_creador"`
	FechaCreacion    time.Time            `json:"fecha_creacion"`
	Productos        *ProductResponse     `json:"productos,omitempty"`
	Usuarios         *UserSummaryResponse `json:"usuarios,omitempty"`
}

// LotListResponse GET /lotes y GET /lotes/producto/:idProducto.
type LotListResponse struct {
	Lotes []LotResponse `json:"lotes"`
}

// LotEnvelope respuesta de un lote.
type LotEnvelope struct {
	Lote LotResponse `json:"lote"`
}

// ExpiringLotsResponse GET /lotes/alertas/vencimientos.
type ExpiringLotsResponse struct {
	Lotes []LotResponse `json:"lotes"`
	Total int           `json:"total"`
}
