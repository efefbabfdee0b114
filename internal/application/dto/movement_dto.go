package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de línea de una entrada.
const (
	LineKindExisting = "existente"
	LineKindNew      = "nuevo"
)

// EntradaLineRequest detalle de POST /entradas. Con tipo "existente" se usa id_producto;
// con "nuevo" se usan codigo, nombre_articulo y categoria_id. Siempre se crea un lote nuevo.
type EntradaLineRequest struct {
	Tipo             string          `json:"tipo" validate:"omitempty,oneof=existente nuevo"`
	IDProducto       *int64          `json:"id_producto"`
	Codigo           string          `json:"codigo"`
	NombreArticulo   string          `json:"nombre_articulo"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      *int64          `json:"categoria_id"`
	NumeroLote       string          `json:"numero_lote"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	Cantidad         decimal.Decimal `json:"cantidad"`
}

// CreateEntradaRequest body de POST /entradas. Con numero_acta_auto se asigna el número sugerido.
type CreateEntradaRequest struct {
	NumeroActa     string               `json:"numero_acta" validate:"max=60"`
	NumeroActaAuto bool                 `json:"numero_acta_auto"`
	FechaEntrada   string               `json:"fecha_entrada"`
	Proveedor      string               `json:"proveedor" validate:"max=200"`
	ArchivoActa    *string              `json:"archivo_acta"`
	Detalles       []EntradaLineRequest `json:"detalles" validate:"dive"`
}

// SalidaLineRequest detalle de POST /salidas.
type SalidaLineRequest struct {
	IDLote   int64           `json:"id_lote"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// CreateSalidaRequest body de POST /salidas.
type CreateSalidaRequest struct {
	NumeroActaSalida string              `json:"numero_acta_salida" validate:"max=60"`
	NumeroActaAuto   bool                `json:"numero_acta_auto"`
	FechaSalida      string              `json:"fecha_salida"`
	Beneficiario     string              `json:"beneficiario" validate:"max=200"`
	LugarSalida      string              `json:"lugar_salida" validate:"max=200"`
	Detalles         []SalidaLineRequest `json:"detalles"`
}

// EntradaLineResponse detalle de entrada con lote y producto.
type EntradaLineResponse struct {
	IDDetalleEntrada     int64           `json:"id_detalle_entrada"`
	IDEntrada            int64           `json:"id_entrada"`
	IDLote               int64           `json:"id_lote"`
	Cantidad             decimal.Decimal `json:"cantidad"`
	IDUsuarioRegistrador int64           `json:"id_usuario_registrador"`
	Lotes                *LotResponse    `json:"lotes"`
}

// EntradaResponse entrada con registrador y detalles.
type EntradaResponse struct {
	IDEntrada            int64                 `json:"id_entrada"`
	NumeroActa           string                `json:"numero_acta"`
	FechaEntrada         string                `json:"fecha_entrada"`
	Proveedor            string                `json:"proveedor"`
	ArchivoActa          *string               `json:"archivo_acta"`
	IDUsuarioRegistrador int64                 `json:"id_usuario_registrador"`
	FechaCreacion        time.Time             `json:"fecha_creacion"`
	Usuarios             *UserSummaryResponse  `json:"usuarios"`
	DetalleEntradas      []EntradaLineResponse `json:"detalle_entradas"`
}

// EntradaListResponse GET /entradas.
type EntradaListResponse struct {
	Entradas []EntradaResponse `json:"entradas"`
}

// EntradaEnvelope GET /entradas/:id.
type EntradaEnvelope struct {
	Entrada EntradaResponse `json:"entrada"`
}

// EntradaCreatedResponse POST /entradas.
type EntradaCreatedResponse struct {
	Entrada EntradaResponse `json:"entrada"`
	Message string          `json:"message"`
}

// SalidaLineResponse detalle de salida con lote y producto.
type SalidaLineResponse struct {
	IDDetalleSalida      int64           `json:"id_detalle_salida"`
	IDSalida             int64           `json:"id_salida"`
	IDLote               int64           `json:"id_lote"`
	Cantidad             decimal.Decimal `json:"cantidad"`
	IDUsuarioRegistrador int64           `json:"id_usuario_registrador"`
	Lotes                *LotResponse    `json:"lotes"`
}

// SalidaResponse salida con registrador y detalles.
type SalidaResponse struct {
	IDSalida             int64                `json:"id_salida"`
	NumeroActaSalida     string               `json:"numero_acta_salida"`
	FechaSalida          string               `json:"fecha_salida"`
	Beneficiario         string               `json:"beneficiario"`
	LugarSalida          string               `json:"lugar_salida"`
	IDUsuarioRegistrador int64                `json:"id_usuario_registrador"`
	FechaCreacion        time.Time            `json:"fecha_creacion"`
	Usuarios             *UserSummaryResponse `json:"usuarios"`
	DetalleSalidas       []SalidaLineResponse `json:"detalle_salidas"`
}

// SalidaListResponse GET /salidas.
type SalidaListResponse struct {
	Salidas []SalidaResponse `json:"salidas"`
}

// SalidaEnvelope GET /salidas/:id.
type SalidaEnvelope struct {
	Salida SalidaResponse `json:"salida"`
}

// SalidaCreatedResponse POST /salidas.
type SalidaCreatedResponse struct {
	Salida  SalidaResponse `json:"salida"`
	Message string         `json:"message"`
}
