package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

func seed(t *testing.T) (*Store, *entity.User, *entity.Category, *entity.Product) {
	t.Helper()
	ctx := context.Background()
	s := NewStore()
	u := &entity.User{AuthUID: "uid-1", Username: "ana", Email: "ana@example.com", Role: entity.RoleAdmin, Active: true}
	require.NoError(t, NewUserRepository(s).Create(ctx, u))
	c := &entity.Category{Name: "Insumos", Active: true}
	require.NoError(t, NewCategoryRepository(s).Create(ctx, c))
	p := &entity.Product{Code: "P-1", Name: "Guantes", Active: true, CategoryID: &c.ID, CreatorID: &u.ID}
	require.NoError(t, NewProductRepository(s).Create(ctx, p))
	return s, u, c, p
}

func newLot(productID int64, number string, qty int64) *entity.Lot {
	return &entity.Lot{
		ProductID:       productID,
		Number:          number,
		ExpiryDate:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		InitialQuantity: decimal.NewFromInt(qty),
		CurrentStock:    decimal.NewFromInt(qty),
		Status:          entity.LotStatusAvailable,
	}
}

func TestCategoryRepo_UnicidadYProductosAsociados(t *testing.T) {
	s, _, c, _ := seed(t)
	ctx := context.Background()
	repo := NewCategoryRepository(s)

	err := repo.Create(ctx, &entity.Category{Name: "Insumos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.ErrorIs(t, repo.Delete(ctx, c.ID), domain.ErrForeignKey)
	assert.ErrorIs(t, repo.Delete(ctx, 999), domain.ErrNotFound)

	n, err := repo.CountProducts(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestProductRepo_CategoriaInexistente(t *testing.T) {
	s, _, _, _ := seed(t)
	missing := int64(42)
	err := NewProductRepository(s).Create(context.Background(), &entity.Product{Code: "P-2", Name: "X", CategoryID: &missing})
	assert.ErrorIs(t, err, domain.ErrForeignKey)
}

func TestLotRepo_DebitoCondicional(t *testing.T) {
	s, _, _, p := seed(t)
	ctx := context.Background()
	repo := NewLotRepository(s)
	l := newLot(p.ID, "L-1", 5)
	require.NoError(t, repo.Create(ctx, l))

	ok, err := repo.DebitStock(ctx, l.ID, decimal.NewFromInt(6))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.DebitStock(ctx, l.ID, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentStock.IsZero())
	assert.Equal(t, entity.LotStatusDepleted, got.Status)
	require.NotNil(t, got.Product)
	assert.Equal(t, "Guantes", got.Product.Name)

	require.NoError(t, repo.CreditStock(ctx, l.ID, decimal.NewFromInt(2)))
	got, _ = repo.GetByID(ctx, l.ID)
	assert.Equal(t, entity.LotStatusAvailable, got.Status)
}

func TestEntradaRepo_CascadaYDetallesTodoONada(t *testing.T) {
	s, u, _, p := seed(t)
	ctx := context.Background()
	lots := NewLotRepository(s)
	entradas := NewEntradaRepository(s)

	l := newLot(p.ID, "L-1", 3)
	require.NoError(t, lots.Create(ctx, l))
	e := &entity.Entrada{ActaNumber: "ACT-2024-001", Date: time.Now(), Supplier: "Prov", RegisteredBy: u.ID}
	require.NoError(t, entradas.Create(ctx, e))

	err := entradas.CreateLines(ctx, []entity.EntradaLine{
		{EntradaID: e.ID, LotID: l.ID, Quantity: decimal.NewFromInt(3)},
		{EntradaID: e.ID, LotID: 999, Quantity: decimal.NewFromInt(1)},
	})
	assert.ErrorIs(t, err, domain.ErrForeignKey)
	assert.Equal(t, 0, s.Counts().EntradaLines)

	require.NoError(t, entradas.CreateLines(ctx, []entity.EntradaLine{
		{EntradaID: e.ID, LotID: l.ID, Quantity: decimal.NewFromInt(3)},
	}))
	assert.ErrorIs(t, lots.Delete(ctx, l.ID), domain.ErrForeignKey, "un lote con detalles no se borra")

	got, err := entradas.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "L-1", got.Lines[0].Lot.Number)
	assert.Equal(t, "ana", got.Registrar.Username)

	require.NoError(t, entradas.Delete(ctx, e.ID))
	assert.Equal(t, 0, s.Counts().EntradaLines)

	dup := &entity.Entrada{ActaNumber: "ACT-2024-001", Date: time.Now(), Supplier: "Prov", RegisteredBy: u.ID}
	require.NoError(t, entradas.Create(ctx, dup), "tras borrar, el número de acta queda libre")
	assert.ErrorIs(t, entradas.Create(ctx, &entity.Entrada{ActaNumber: "ACT-2024-001", RegisteredBy: u.ID}), domain.ErrDuplicate)
}

func TestLastActaNumber_Lexicografico(t *testing.T) {
	s, u, _, _ := seed(t)
	ctx := context.Background()
	salidas := NewSalidaRepository(s)
	for _, n := range []string{"SAL-2024-001", "SAL-2024-010", "SAL-2024-002", "SAL-2023-099"} {
		require.NoError(t, salidas.Create(ctx, &entity.Salida{ActaNumber: n, RegisteredBy: u.ID}))
	}

	last, err := salidas.LastActaNumber(ctx, "SAL-2024-")
	require.NoError(t, err)
	assert.Equal(t, "SAL-2024-010", last)

	last, err = salidas.LastActaNumber(ctx, "SAL-2025-")
	require.NoError(t, err)
	assert.Empty(t, last)
}
