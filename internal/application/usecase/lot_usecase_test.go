package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/application/inventory"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, f *fixture) int64 {
	t.Helper()
	p, err := f.products(nil).Create(context.Background(), f.identity, dto.CreateProductRequest{
		Codigo: "P-1", NombreArticulo: "Paracetamol", CategoriaID: &f.category.ID,
	})
	require.NoError(t, err)
	return p.IDProducto
}

func TestLotUseCase_CrearInicializaStock(t *testing.T) {
	f := newFixture(t)
	productID := seedProduct(t, f)

	out, err := f.lots().Create(context.Background(), f.identity, dto.CreateLotRequest{
		IDProducto: productID, NumeroLote: "L-001", FechaVencimiento: "2025-03-01", CantidadInicial: decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	assert.True(t, out.StockActual.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, entity.LotStatusAvailable, out.Estado)
	assert.Equal(t, "2025-03-01", out.FechaVencimiento)
	require.NotNil(t, out.Productos)
	assert.Equal(t, "P-1", out.Productos.Codigo)
}

func TestLotUseCase_CrearValidaciones(t *testing.T) {
	f := newFixture(t)
	productID := seedProduct(t, f)
	uc := f.lots()
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateLotRequest
		kind error
		msg  string
	}{
		{"campos vacíos", dto.CreateLotRequest{IDProducto: productID}, domain.ErrInvalidInput, "Todos los campos son requeridos"},
		{"fecha pasada", dto.CreateLotRequest{IDProducto: productID, NumeroLote: "L", FechaVencimiento: "2024-06-15", CantidadInicial: decimal.NewFromInt(1)}, domain.ErrInvalidInput, "La fecha de vencimiento debe ser futura"},
		{"fecha inválida", dto.CreateLotRequest{IDProducto: productID, NumeroLote: "L", FechaVencimiento: "15/06/2025", CantidadInicial: decimal.NewFromInt(1)}, domain.ErrInvalidInput, "Fecha de vencimiento inválida"},
		{"cantidad negativa", dto.CreateLotRequest{IDProducto: productID, NumeroLote: "L", FechaVencimiento: "2025-01-01", CantidadInicial: decimal.NewFromInt(-3)}, domain.ErrInvalidInput, "La cantidad inicial debe ser mayor a 0"},
		{"producto inexistente", dto.CreateLotRequest{IDProducto: 999, NumeroLote: "L", FechaVencimiento: "2025-01-01", CantidadInicial: decimal.NewFromInt(1)}, domain.ErrInvalidInput, "El producto seleccionado no existe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, f.identity, tc.in)
			assert.ErrorIs(t, err, tc.kind)
			msg, _ := domain.MessageOf(err)
			assert.Equal(t, tc.msg, msg)
		})
	}
	assert.Zero(t, f.store.Counts().Lots)
}

func TestLotUseCase_NumeroDuplicado(t *testing.T) {
	f := newFixture(t)
	productID := seedProduct(t, f)
	uc := f.lots()
	in := dto.CreateLotRequest{IDProducto: productID, NumeroLote: "L-001", FechaVencimiento: "2025-01-01", CantidadInicial: decimal.NewFromInt(5)}

	_, err := uc.Create(context.Background(), f.identity, in)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), f.identity, in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLotUseCase_ActualizarYEliminar(t *testing.T) {
	f := newFixture(t)
	productID := seedProduct(t, f)
	uc := f.lots()
	ctx := context.Background()
	created, err := uc.Create(ctx, f.identity, dto.CreateLotRequest{
		IDProducto: productID, NumeroLote: "L-001", FechaVencimiento: "2025-01-01", CantidadInicial: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	blocked := entity.LotStatusBlocked
	out, err := uc.Update(ctx, created.IDLote, dto.UpdateLotRequest{Estado: &blocked})
	require.NoError(t, err)
	assert.Equal(t, entity.LotStatusBlocked, out.Estado)
	assert.Equal(t, "L-001", out.NumeroLote)

	bad := "perdido"
	_, err = uc.Update(ctx, created.IDLote, dto.UpdateLotRequest{Estado: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ok, err := memory.NewLotRepository(f.store).DebitStock(ctx, created.IDLote, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.True(t, ok)
	assert.ErrorIs(t, uc.Delete(ctx, created.IDLote), domain.ErrConflict)

	assert.ErrorIs(t, uc.Delete(ctx, 999), domain.ErrNotFound)
}

func TestLotUseCase_EliminarLoteRecibidoPorEntrada(t *testing.T) {
	f := newFixture(t)
	productID := seedProduct(t, f)
	ctx := context.Background()
	entradas := inventory.NewEntradaUseCase(memory.NewSet(f.store), f.gateway, inventory.Options{Clock: fixedClock})
	_, err := entradas.Create(ctx, f.identity, dto.CreateEntradaRequest{
		NumeroActa:   "ACT-2024-001",
		FechaEntrada: "2024-06-15",
		Proveedor:    "Droguería Central",
		Detalles: []dto.EntradaLineRequest{{
			Tipo:             dto.LineKindExisting,
			IDProducto:       &productID,
			NumeroLote:       "L-1",
			FechaVencimiento: "2025-12-31",
			Cantidad:         decimal.NewFromInt(5),
		}},
	})
	require.NoError(t, err)

	lots, err := f.lots().ListByProduct(ctx, productID)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.True(t, lots[0].StockActual.Equal(lots[0].CantidadInicial))

	err = f.lots().Delete(ctx, lots[0].IDLote)
	assert.ErrorIs(t, err, domain.ErrConflict)
	msg, ok := domain.MessageOf(err)
	require.True(t, ok)
	assert.Equal(t, "No se puede eliminar el lote porque tiene movimientos de stock", msg)
	assert.Equal(t, 1, f.store.Counts().Lots)
}

func TestLotUseCase_AlertasDeVencimiento(t *testing.T) {
	f := newFixture(t)
	productID := seedProduct(t, f)
	uc := f.lots()
	ctx := context.Background()
	for number, expiry := range map[string]string{"L-10": "2024-06-25", "L-30": "2024-07-15", "L-90": "2024-09-13"} {
		_, err := uc.Create(ctx, f.identity, dto.CreateLotRequest{
			IDProducto: productID, NumeroLote: number, FechaVencimiento: expiry, CantidadInicial: decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	lots, err := uc.ListExpiring(ctx, 30)
	require.NoError(t, err)
	require.Len(t, lots, 2)
	assert.Equal(t, "L-10", lots[0].NumeroLote)
	assert.Equal(t, "L-30", lots[1].NumeroLote)

	_, err = uc.ListExpiring(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
