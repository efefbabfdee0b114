package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /productos.
type CreateProductRequest struct {
	Codigo         string `json:"codigo" validate:"max=60"`
	NombreArticulo string `json:"nombre_articulo" validate:"max=200"`
	Descripcion    string `json:"descripcion"`
	Activo         *bool  `json:"activo"`
	CategoriaID    *int64 `json:"categoria_id"`
}

// UpdateProductRequest body de PUT /productos/:id; solo se modifican los campos presentes.
type UpdateProductRequest struct {
	Codigo         *string `json:"codigo" validate:"omitempty,min=1,max=60"`
	NombreArticulo *string `json:"nombre_articulo" validate:"omitempty,min=1,max=200"`
	Descripcion    *string `json:"descripcion"`
	Activo         *bool   `json:"activo"`
	CategoriaID    *int64  `json:"categoria_id"`
}

// ProductResponse producto con categoría, creador y, en el detalle, sus lotes.
type ProductResponse struct {
	IDProducto         int64                `json:"id_producto"`
	Codigo             string               `json:"codigo"`
	NombreArticulo     string               `json:"nombre_articulo"`
	Descripcion        string               `json:"descripcion"`
	Activo             bool                 `json:"activo"`
	CategoriaID        *int64               `json:"categoria_id"`
	IDUsuarioCreador   *int64               `json:"id_usuario_creador"`
	FechaCreacion      time.Time            `json:"fecha_creacion"`
	FechaActualizacion time.Time            `json:"fecha_actualizacion"`
	Categorias         *CategoryResponse    `json:"categorias"`
	Usuarios           *UserSummaryResponse `json:"usuarios,omitempty"`
	Lotes              []LotResponse        `json:"lotes,omitempty"`
}

// ProductListResponse GET /productos.
type ProductListResponse struct {
	Productos []ProductResponse `json:"productos"`
}

// ProductEnvelope respuesta de un producto.
type ProductEnvelope struct {
	Producto ProductResponse `json:"producto"`
}

// StockCategory categoría resumida en la vista de stock.
type StockCategory struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// StockRow fila (producto, lote) de la vista de inventario.
type StockRow struct {
	ID                   int64           `json:"id"`
	Codigo               string          `json:"codigo"`
	Nombre               string          `json:"nombre"`
	CategoriaID          *int64          `json:"categoria_id"`
	Categoria            *StockCategory  `json:"categoria"`
	Lote                 string          `json:"lote"`
	FechaVencimiento     string          `json:"fecha_vencimiento"`
	UnidadMedida         string          `json:"unidad_medida"`
	StockActual          decimal.Decimal `json:"stock_actual"`
	EstadoVencimiento    string          `json:"estado_vencimiento"`
	DiasHastaVencimiento int             `json:"dias_hasta_vencimiento"`
	IDLote               int64           `json:"id_lote"`
	CantidadInicial      decimal.Decimal `json:"cantidad_inicial"`
	EstadoLote           string          `json:"estado_lote"`
}

// StockViewResponse GET /productos/inventario/stock.
type StockViewResponse struct {
	Productos []StockRow `json:"productos"`
}
