package entity

// Estados de vencimiento de la vista de stock.
const (
	ExpiryStatusValid    = "vigente"
	ExpiryStatusExpiring = "por_vencer"
	ExpiryStatusExpired  = "vencido"
)

// StockEntry fila de la vista de stock: un par (producto activo, lote con existencias).
type StockEntry struct {
	Product         *Product
	Lot             Lot
	DaysUntilExpiry int
	ExpiryStatus    string
}
