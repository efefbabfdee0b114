package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-lotes-api/pkg/config"
)

var today = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

type env struct {
	store    *memory.Store
	repos    repository.Set
	users    UserResolver
	identity *entity.Identity
	user     *entity.User
	category *entity.Category
	metrics  *fakeRecorder
}

type fakeRecorder struct {
	movements     []string
	compensations []string
}

func (r *fakeRecorder) IncMovement(kind, state string) {
	r.movements = append(r.movements, kind+":"+state)
}

func (r *fakeRecorder) IncCompensation(_, step, outcome string) {
	r.compensations = append(r.compensations, step+":"+outcome)
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	repos := memory.NewSet(store)
	u := &entity.User{AuthUID: "uid-1", Username: "bodega", Email: "bodega@example.com", Role: entity.RoleUsuario, Active: true}
	require.NoError(t, repos.Users.Create(ctx, u))
	c := &entity.Category{Name: "Medicamentos", Active: true}
	require.NoError(t, repos.Categories.Create(ctx, c))
	return &env{
		store:    store,
		repos:    repos,
		users:    auth.NewGateway(nil, repos.Users, nil),
		identity: &entity.Identity{Subject: u.AuthUID},
		user:     u,
		category: c,
		metrics:  &fakeRecorder{},
	}
}

func (e *env) options(policy config.InventoryConfig) Options {
	return Options{Policy: policy, Metrics: e.metrics, Clock: func() time.Time { return today }}
}

func (e *env) entradas(policy config.InventoryConfig) *EntradaUseCase {
	return NewEntradaUseCase(e.repos, e.users, e.options(policy))
}

func (e *env) salidas(policy config.InventoryConfig) *SalidaUseCase {
	return NewSalidaUseCase(e.repos, e.users, e.options(policy))
}

func (e *env) product(t *testing.T, code string) *entity.Product {
	t.Helper()
	p := &entity.Product{Code: code, Name: "Producto " + code, Active: true, CategoryID: &e.category.ID}
	require.NoError(t, e.repos.Products.Create(context.Background(), p))
	return p
}

func (e *env) lot(t *testing.T, productID int64, number string, stock int64) *entity.Lot {
	t.Helper()
	l := &entity.Lot{
		ProductID:       productID,
		Number:          number,
		ExpiryDate:      today.AddDate(1, 0, 0),
		InitialQuantity: decimal.NewFromInt(stock),
		CurrentStock:    decimal.NewFromInt(stock),
		Status:          entity.LotStatusAvailable,
	}
	require.NoError(t, e.repos.Lots.Create(context.Background(), l))
	return l
}

func newLine(code, lot string, qty int64, categoryID int64) dto.EntradaLineRequest {
	return dto.EntradaLineRequest{
		Tipo:             dto.LineKindNew,
		Codigo:           code,
		NombreArticulo:   "Artículo " + code,
		CategoriaID:      &categoryID,
		NumeroLote:       lot,
		FechaVencimiento: "2025-12-31",
		Cantidad:         decimal.NewFromInt(qty),
	}
}

func messageOf(t *testing.T, err error) string {
	t.Helper()
	msg, ok := domain.MessageOf(err)
	require.True(t, ok, "se esperaba un error de dominio: %v", err)
	return msg
}

var errBoom = errors.New("conexión perdida")

// failingEntradas falla al insertar detalles.
type failingEntradas struct {
	repository.EntradaRepository
}

func (failingEntradas) CreateLines(context.Context, []entity.EntradaLine) error { return errBoom }

// failingSalidas falla al insertar detalles.
type failingSalidas struct {
	repository.SalidaRepository
}

func (failingSalidas) CreateLines(context.Context, []entity.SalidaLine) error { return errBoom }

// staleEntradas siempre informa que no hay actas, forzando colisiones al autonumerar.
type staleEntradas struct {
	repository.EntradaRepository
}

func (staleEntradas) LastActaNumber(context.Context, string) (string, error) { return "", nil }

// contendedLots simula que otra salida consumió el stock de lotID entre la validación y el débito.
type contendedLots struct {
	repository.LotRepository
	lotID int64
}

func (c contendedLots) DebitStock(ctx context.Context, id int64, qty decimal.Decimal) (bool, error) {
	if id == c.lotID {
		return false, nil
	}
	return c.LotRepository.DebitStock(ctx, id, qty)
}
