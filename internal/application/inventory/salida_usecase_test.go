package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/pkg/config"
)

func salidaRequest(acta string, lines ...dto.SalidaLineRequest) dto.CreateSalidaRequest {
	return dto.CreateSalidaRequest{
		NumeroActaSalida: acta,
		FechaSalida:      "2024-06-15",
		Beneficiario:     "Centro de Salud Norte",
		LugarSalida:      "Bodega 1",
		Detalles:         lines,
	}
}

func TestSalida_StockInsuficienteSinEscrituras(t *testing.T) {
	e := newEnv(t)
	p := e.product(t, "P-1")
	ok := e.lot(t, p.ID, "L-OK", 50)
	short := e.lot(t, p.ID, "L-5", 5)
	uc := e.salidas(config.InventoryConfig{})

	_, err := uc.Create(context.Background(), e.identity, salidaRequest("SAL-2024-001",
		dto.SalidaLineRequest{IDLote: ok.ID, Cantidad: decimal.NewFromInt(1)},
		dto.SalidaLineRequest{IDLote: short.ID, Cantidad: decimal.NewFromInt(6)},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "Stock insuficiente en lote L-5. Disponible: 5, Solicitado: 6", messageOf(t, err))

	counts := e.store.Counts()
	assert.Zero(t, counts.Salidas)
	assert.Zero(t, counts.SalidaLines)
	assert.Equal(t, []string{"salida:RESOLVING_LINES"}, e.metrics.movements)
}

func TestSalida_LoteInexistente(t *testing.T) {
	e := newEnv(t)
	uc := e.salidas(config.InventoryConfig{})

	_, err := uc.Create(context.Background(), e.identity, salidaRequest("SAL-2024-001",
		dto.SalidaLineRequest{IDLote: 404, Cantidad: decimal.NewFromInt(1)},
	))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Lote no encontrado: 404", messageOf(t, err))
	assert.Zero(t, e.store.Counts().Salidas)
}

func TestSalida_RegistraSinDescontarPorDefecto(t *testing.T) {
	e := newEnv(t)
	p := e.product(t, "P-1")
	l := e.lot(t, p.ID, "L-1", 10)
	uc := e.salidas(config.InventoryConfig{})

	out, err := uc.Create(context.Background(), e.identity, salidaRequest("SAL-2024-001",
		dto.SalidaLineRequest{IDLote: l.ID, Cantidad: decimal.NewFromInt(4)},
	))
	require.NoError(t, err)
	require.Len(t, out.DetalleSalidas, 1)
	assert.Equal(t, "Centro de Salud Norte", out.Beneficiario)

	lot, err := e.repos.Lots.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.True(t, lot.CurrentStock.Equal(decimal.NewFromInt(10)))
}

func TestSalida_DescuentaStockConPolitica(t *testing.T) {
	e := newEnv(t)
	p := e.product(t, "P-1")
	l := e.lot(t, p.ID, "L-1", 10)
	uc := e.salidas(config.InventoryConfig{DebitStockOnSalida: true})
	ctx := context.Background()

	out, err := uc.Create(ctx, e.identity, salidaRequest("SAL-2024-001",
		dto.SalidaLineRequest{IDLote: l.ID, Cantidad: decimal.NewFromInt(10)},
	))
	require.NoError(t, err)

	lot, err := e.repos.Lots.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, lot.CurrentStock.IsZero())
	assert.Equal(t, entity.LotStatusDepleted, lot.Status)

	// borrar la salida devuelve el stock
	require.NoError(t, uc.Delete(ctx, out.IDSalida))
	lot, err = e.repos.Lots.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, lot.CurrentStock.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, entity.LotStatusAvailable, lot.Status)
}

func TestSalida_DobleDetalleSobreMismoLoteConPolitica(t *testing.T) {
	e := newEnv(t)
	p := e.product(t, "P-1")
	l := e.lot(t, p.ID, "L-1", 5)
	uc := e.salidas(config.InventoryConfig{DebitStockOnSalida: true})
	ctx := context.Background()

	_, err := uc.Create(ctx, e.identity, salidaRequest("SAL-2024-001",
		dto.SalidaLineRequest{IDLote: l.ID, Cantidad: decimal.NewFromInt(3)},
		dto.SalidaLineRequest{IDLote: l.ID, Cantidad: decimal.NewFromInt(3)},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "Stock insuficiente en lote L-1. Disponible: 5, Solicitado: 6", messageOf(t, err))

	lot, err := e.repos.Lots.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, lot.CurrentStock.Equal(decimal.NewFromInt(5)))
	assert.Zero(t, e.store.Counts().Salidas)
	assert.Zero(t, e.store.Counts().SalidaLines)
	assert.Empty(t, e.metrics.compensations)
	assert.Equal(t, []string{"salida:" + StateResolvingLines}, e.metrics.movements)
}

func TestSalida_DobleDetalleSinPoliticaValidaCadaLinea(t *testing.T) {
	e := newEnv(t)
	p := e.product(t, "P-1")
	l := e.lot(t, p.ID, "L-1", 5)
	uc := e.salidas(config.InventoryConfig{})

	_, err := uc.Create(context.Background(), e.identity, salidaRequest("SAL-2024-001",
		dto.SalidaLineRequest{IDLote: l.ID, Cantidad: decimal.NewFromInt(3)},
		dto.SalidaLineRequest{IDLote: l.ID, Cantidad: decimal.NewFromInt(3)},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, e.store.Counts().SalidaLines)
}

func TestSalida_DebitoConcurrenteCompensa(t *testing.T) {
	e := newEnv(t)
	p := e.product(t, "P-1")
	a := e.lot(t, p.ID, "L-A", 5)
	b := e.lot(t, p.ID, "L-B", 5)
	repos := e.repos
	repos.Lots = contendedLots{LotRepository: e.repos.Lots, lotID: b.ID}
	uc := NewSalidaUseCase(repos, e.users, e.options(config.InventoryConfig{DebitStockOnSalida: true}))
	ctx := context.Background()

	_, err := uc.Create(ctx, e.identity, salidaRequest("SAL-2024-001",
		dto.SalidaLineRequest{IDLote: a.ID, Cantidad: decimal.NewFromInt(2)},
		dto.SalidaLineRequest{IDLote: b.ID, Cantidad: decimal.NewFromInt(2)},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "Detalle 2: Stock insuficiente", messageOf(t, err))

	lot, err := e.repos.Lots.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, lot.CurrentStock.Equal(decimal.NewFromInt(5)))
	assert.Zero(t, e.store.Counts().Salidas)
	assert.Equal(t, []string{fmt.Sprintf("débito lote %d:ok", a.ID), "encabezado:ok"}, e.metrics.compensations)
}

func TestSalida_FalloAlInsertarDetallesBorraEncabezado(t *testing.T) {
	e := newEnv(t)
	p := e.product(t, "P-1")
	l := e.lot(t, p.ID, "L-1", 5)
	repos := e.repos
	repos.Salidas = failingSalidas{e.repos.Salidas}
	uc := NewSalidaUseCase(repos, e.users, e.options(config.InventoryConfig{DebitStockOnSalida: true}))

	_, err := uc.Create(context.Background(), e.identity, salidaRequest("SAL-2024-001",
		dto.SalidaLineRequest{IDLote: l.ID, Cantidad: decimal.NewFromInt(2)},
	))
	assert.ErrorIs(t, err, errBoom)
	assert.Zero(t, e.store.Counts().Salidas)

	lot, err := e.repos.Lots.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.True(t, lot.CurrentStock.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, []string{"salida:ROLLED_BACK"}, e.metrics.movements)
}

func TestSalida_ValidacionYSugerencia(t *testing.T) {
	e := newEnv(t)
	uc := e.salidas(config.InventoryConfig{})
	ctx := context.Background()

	_, err := uc.Create(ctx, e.identity, dto.CreateSalidaRequest{NumeroActaSalida: "SAL-1", FechaSalida: "2024-06-15"})
	assert.Equal(t, "Número de acta, fecha, beneficiario y detalles son requeridos", messageOf(t, err))

	_, err = uc.Create(ctx, e.identity, salidaRequest("SAL-1", dto.SalidaLineRequest{IDLote: 1, Cantidad: decimal.NewFromInt(-1)}))
	assert.Equal(t, "Detalle 1: La cantidad debe ser mayor a 0", messageOf(t, err))

	s, err := uc.SuggestActaNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SAL-2024-001", s)

	assert.ErrorIs(t, uc.Delete(ctx, 99), domain.ErrNotFound)
	_, err = uc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
