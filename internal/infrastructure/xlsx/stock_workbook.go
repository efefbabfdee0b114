// Package xlsx exporta la vista de stock a una hoja de cálculo.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
)

// SheetName nombre de la hoja del libro exportado.
const SheetName = "Stock"

var stockHeader = []interface{}{
	"Código",
	"Producto",
	"Categoría",
	"Lote",
	"Fecha vencimiento",
	"Días para vencer",
	"Estado vencimiento",
	"Cantidad inicial",
	"Stock actual",
	"Estado lote",
}

// StockExporter implementa usecase.StockExporter con excelize.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter { return &StockExporter{} }

// StockWorkbook genera un .xlsx con una fila por (producto, lote).
func (StockExporter) StockWorkbook(rows []dto.StockRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &stockHeader); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(SheetName, 1, 1, bold)
	}

	for i, r := range rows {
		category := ""
		if r.Categoria != nil {
			category = r.Categoria.Nombre
		}
		excelRow := []interface{}{
			r.Codigo,
			r.Nombre,
			category,
			r.Lote,
			r.FechaVencimiento,
			r.DiasHastaVencimiento,
			r.EstadoVencimiento,
			r.CantidadInicial.InexactFloat64(),
			r.StockActual.InexactFloat64(),
			r.EstadoLote,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda fila %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(SheetName, "A", "J", 18)

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
