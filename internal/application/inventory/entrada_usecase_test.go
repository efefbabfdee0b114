package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/pkg/config"
)

func TestEntrada_CrearConDetallesNuevosYExistentes(t *testing.T) {
	e := newEnv(t)
	existing := e.product(t, "P-EX")
	uc := e.entradas(config.InventoryConfig{})

	existingLine := dto.EntradaLineRequest{
		Tipo: dto.LineKindExisting, IDProducto: &existing.ID,
		NumeroLote: "L-EX", FechaVencimiento: "2025-01-31", Cantidad: decimal.NewFromInt(12),
	}
	out, err := uc.Create(context.Background(), e.identity, dto.CreateEntradaRequest{
		NumeroActa:   "ACT-2024-001",
		FechaEntrada: "2024-06-15",
		Proveedor:    "Droguería Central",
		Detalles:     []dto.EntradaLineRequest{newLine("P-NEW", "L-NEW", 30, e.category.ID), existingLine},
	})
	require.NoError(t, err)

	counts := e.store.Counts()
	assert.Equal(t, 1, counts.Entradas)
	assert.Equal(t, 2, counts.EntradaLines)
	assert.Equal(t, 2, counts.Lots)
	assert.Equal(t, 2, counts.Products)

	require.Len(t, out.DetalleEntradas, 2)
	for _, d := range out.DetalleEntradas {
		require.NotNil(t, d.Lotes)
		assert.True(t, d.Lotes.StockActual.Equal(d.Cantidad))
		assert.Equal(t, e.user.ID, d.IDUsuarioRegistrador)
	}
	assert.Equal(t, []string{"entrada:LINES_COMMITTED"}, e.metrics.movements)
}

func TestEntrada_ProductoNuevoReutilizaCodigo(t *testing.T) {
	e := newEnv(t)
	existing := e.product(t, "P-1")
	uc := e.entradas(config.InventoryConfig{})

	out, err := uc.Create(context.Background(), e.identity, dto.CreateEntradaRequest{
		NumeroActa: "ACT-2024-001", FechaEntrada: "2024-06-15", Proveedor: "X",
		Detalles: []dto.EntradaLineRequest{newLine("P-1", "L-1", 5, e.category.ID)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, e.store.Counts().Products)
	assert.Equal(t, existing.ID, out.DetalleEntradas[0].Lotes.IDProducto)
}

func TestEntrada_CategoriaInexistenteCreaSinCategoria(t *testing.T) {
	e := newEnv(t)
	uc := e.entradas(config.InventoryConfig{})

	_, err := uc.Create(context.Background(), e.identity, dto.CreateEntradaRequest{
		NumeroActa: "ACT-2024-001", FechaEntrada: "2024-06-15", Proveedor: "X",
		Detalles: []dto.EntradaLineRequest{newLine("P-9", "L-9", 5, 404)},
	})
	require.NoError(t, err)

	p, err := e.repos.Products.GetByCode(context.Background(), "P-9")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Nil(t, p.CategoryID)
}

func TestEntrada_LoteDuplicadoEnSegundoDetalleBorraEncabezado(t *testing.T) {
	e := newEnv(t)
	uc := e.entradas(config.InventoryConfig{})

	_, err := uc.Create(context.Background(), e.identity, dto.CreateEntradaRequest{
		NumeroActa: "ACT-2024-001", FechaEntrada: "2024-06-15", Proveedor: "X",
		Detalles: []dto.EntradaLineRequest{
			newLine("P-1", "L-DUP", 5, e.category.ID),
			newLine("P-2", "L-DUP", 7, e.category.ID),
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Detalle 2: El número de lote ya existe", messageOf(t, err))

	counts := e.store.Counts()
	assert.Zero(t, counts.Entradas)
	assert.Zero(t, counts.EntradaLines)
	// sin la política de compensación de lotes, el lote del primer detalle queda huérfano
	assert.Equal(t, 1, counts.Lots)
	assert.Equal(t, []string{"encabezado:ok"}, e.metrics.compensations)
	assert.Equal(t, []string{"entrada:ROLLED_BACK"}, e.metrics.movements)
}

func TestEntrada_FalloAlInsertarDetallesCompensaLotesConPolitica(t *testing.T) {
	e := newEnv(t)
	repos := e.repos
	repos.Entradas = failingEntradas{e.repos.Entradas}
	uc := NewEntradaUseCase(repos, e.users, e.options(config.InventoryConfig{CompensateLotsOnEntrada: true}))

	_, err := uc.Create(context.Background(), e.identity, dto.CreateEntradaRequest{
		NumeroActa: "ACT-2024-001", FechaEntrada: "2024-06-15", Proveedor: "X",
		Detalles: []dto.EntradaLineRequest{newLine("P-1", "L-1", 5, e.category.ID), newLine("P-2", "L-2", 3, e.category.ID)},
	})
	assert.ErrorIs(t, err, errBoom)

	counts := e.store.Counts()
	assert.Zero(t, counts.Entradas)
	assert.Zero(t, counts.Lots)
	assert.Zero(t, counts.Products)
	assert.Equal(t, []string{
		"lote L-2:ok", "producto P-2:ok", "lote L-1:ok", "producto P-1:ok", "encabezado:ok",
	}, e.metrics.compensations)
}

func TestEntrada_ValidacionSinEscrituras(t *testing.T) {
	e := newEnv(t)
	uc := e.entradas(config.InventoryConfig{})
	ctx := context.Background()
	past := newLine("P-1", "L-1", 5, e.category.ID)
	past.FechaVencimiento = "2024-06-01"
	noCode := newLine("", "L-1", 5, e.category.ID)

	cases := []struct {
		name string
		in   dto.CreateEntradaRequest
		msg  string
	}{
		{"sin proveedor", dto.CreateEntradaRequest{NumeroActa: "A", FechaEntrada: "2024-06-15", Detalles: []dto.EntradaLineRequest{past}}, "Número de acta, fecha, proveedor y detalles son requeridos"},
		{"sin detalles", dto.CreateEntradaRequest{NumeroActa: "A", FechaEntrada: "2024-06-15", Proveedor: "X", Detalles: []dto.EntradaLineRequest{}}, "Debe incluir al menos un producto en los detalles"},
		{"vencimiento pasado", dto.CreateEntradaRequest{NumeroActa: "A", FechaEntrada: "2024-06-15", Proveedor: "X", Detalles: []dto.EntradaLineRequest{past}}, "Detalle 1: La fecha de vencimiento debe ser futura"},
		{"nuevo sin código", dto.CreateEntradaRequest{NumeroActa: "A", FechaEntrada: "2024-06-15", Proveedor: "X", Detalles: []dto.EntradaLineRequest{noCode}}, "Detalle 1: código, nombre y categoría son requeridos para productos nuevos"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, e.identity, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tc.msg, messageOf(t, err))
		})
	}
	assert.Zero(t, e.store.Counts().Entradas)
	assert.Zero(t, e.store.Counts().Lots)
}

func TestEntrada_ActaDuplicada(t *testing.T) {
	e := newEnv(t)
	uc := e.entradas(config.InventoryConfig{})
	in := dto.CreateEntradaRequest{
		NumeroActa: "ACT-2024-001", FechaEntrada: "2024-06-15", Proveedor: "X",
		Detalles: []dto.EntradaLineRequest{newLine("P-1", "L-1", 5, e.category.ID)},
	}
	_, err := uc.Create(context.Background(), e.identity, in)
	require.NoError(t, err)

	in.Detalles = []dto.EntradaLineRequest{newLine("P-1", "L-2", 5, e.category.ID)}
	_, err = uc.Create(context.Background(), e.identity, in)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "El número de acta ya existe", messageOf(t, err))
	assert.Equal(t, 1, e.store.Counts().Lots)
}

func TestEntrada_AutonumeracionReintentaAnteColision(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.entradas(config.InventoryConfig{}).Create(ctx, e.identity, dto.CreateEntradaRequest{
		NumeroActa: "ACT-2024-001", FechaEntrada: "2024-06-15", Proveedor: "X",
		Detalles: []dto.EntradaLineRequest{newLine("P-1", "L-1", 5, e.category.ID)},
	})
	require.NoError(t, err)

	repos := e.repos
	repos.Entradas = staleEntradas{e.repos.Entradas}
	uc := NewEntradaUseCase(repos, e.users, e.options(config.InventoryConfig{ActaRetryAttempts: 3}))
	_, err = uc.Create(ctx, e.identity, dto.CreateEntradaRequest{
		NumeroActaAuto: true, FechaEntrada: "2024-06-15", Proveedor: "X",
		Detalles: []dto.EntradaLineRequest{newLine("P-1", "L-2", 5, e.category.ID)},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	out, err := e.entradas(config.InventoryConfig{ActaRetryAttempts: 3}).Create(ctx, e.identity, dto.CreateEntradaRequest{
		NumeroActaAuto: true, FechaEntrada: "2024-06-15", Proveedor: "X",
		Detalles: []dto.EntradaLineRequest{newLine("P-1", "L-3", 5, e.category.ID)},
	})
	require.NoError(t, err)
	assert.Equal(t, "ACT-2024-002", out.NumeroActa)
}

func TestEntrada_SugerenciaDeActa(t *testing.T) {
	e := newEnv(t)
	uc := e.entradas(config.InventoryConfig{})
	ctx := context.Background()

	s, err := uc.NextActaSuggestion(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, "ACT-2024-001", s)

	for i, acta := range []string{"ACT-2024-001", "ACT-2024-002"} {
		_, err := uc.Create(ctx, e.identity, dto.CreateEntradaRequest{
			NumeroActa: acta, FechaEntrada: "2024-06-15", Proveedor: "X",
			Detalles: []dto.EntradaLineRequest{newLine("P-1", "L-"+acta, int64(i+1), e.category.ID)},
		})
		require.NoError(t, err)
	}
	s, err = uc.SuggestActaNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ACT-2024-003", s)
}

func TestEntrada_SugerenciaUsaOrdenLexicografico(t *testing.T) {
	e := newEnv(t)
	uc := e.entradas(config.InventoryConfig{})
	ctx := context.Background()

	for _, acta := range []string{"ACT-2024-999", "ACT-2024-1000"} {
		require.NoError(t, e.repos.Entradas.Create(ctx, &entity.Entrada{
			ActaNumber: acta, Date: today, Supplier: "X", RegisteredBy: e.user.ID,
		}))
	}

	// "ACT-2024-999" > "ACT-2024-1000" como texto: la sugerencia repite un número ya usado.
	s, err := uc.NextActaSuggestion(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, "ACT-2024-1000", s)
}

func TestEntrada_EliminarConservaLotes(t *testing.T) {
	e := newEnv(t)
	uc := e.entradas(config.InventoryConfig{})
	ctx := context.Background()
	out, err := uc.Create(ctx, e.identity, dto.CreateEntradaRequest{
		NumeroActa: "ACT-2024-001", FechaEntrada: "2024-06-15", Proveedor: "X",
		Detalles: []dto.EntradaLineRequest{newLine("P-1", "L-1", 5, e.category.ID)},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, out.IDEntrada))
	assert.Zero(t, e.store.Counts().EntradaLines)
	assert.Equal(t, 1, e.store.Counts().Lots)
	assert.ErrorIs(t, uc.Delete(ctx, out.IDEntrada), domain.ErrNotFound)

	_, err = uc.ActaPDF(ctx, out.IDEntrada)
	assert.Error(t, err)
}
