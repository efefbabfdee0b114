package xlsx

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
)

func TestStockWorkbook_FilasYEncabezado(t *testing.T) {
	rows := []dto.StockRow{
		{
			Codigo:               "P-1",
			Nombre:               "Paracetamol",
			Categoria:            &dto.StockCategory{ID: 1, Nombre: "Medicamentos"},
			Lote:                 "L-001",
			FechaVencimiento:     "2024-07-01",
			DiasHastaVencimiento: 16,
			EstadoVencimiento:    "por_vencer",
			CantidadInicial:      decimal.NewFromInt(100),
			StockActual:          decimal.NewFromInt(40),
			EstadoLote:           "disponible",
		},
		{Codigo: "P-2", Nombre: "Gasas", Lote: "G-9", StockActual: decimal.NewFromInt(3)},
	}

	data, err := NewStockExporter().StockWorkbook(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Código", got[0][0])
	assert.Equal(t, []string{"P-1", "Paracetamol", "Medicamentos", "L-001", "2024-07-01", "16", "por_vencer", "100", "40", "disponible"}, got[1])
	assert.Equal(t, "", got[2][2])
	assert.Equal(t, "G-9", got[2][3])
}

func TestStockWorkbook_Vacio(t *testing.T) {
	data, err := NewStockExporter().StockWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
