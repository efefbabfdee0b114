package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/application/auth"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/memory"
)

var today = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

type fixture struct {
	store    *memory.Store
	gateway  *auth.Gateway
	admin    *entity.User
	identity *entity.Identity
	category *entity.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	admin := &entity.User{AuthUID: "uid-admin", Username: "admin", Email: "admin@example.com", Role: entity.RoleAdmin, Active: true}
	require.NoError(t, users.Create(ctx, admin))
	cat := &entity.Category{Name: "Medicamentos", Active: true}
	require.NoError(t, memory.NewCategoryRepository(store).Create(ctx, cat))
	return &fixture{
		store:    store,
		gateway:  auth.NewGateway(nil, users, nil),
		admin:    admin,
		identity: &entity.Identity{Subject: admin.AuthUID, Email: admin.Email},
		category: cat,
	}
}

func (f *fixture) products(exporter StockExporter) *ProductUseCase {
	return NewProductUseCase(
		memory.NewProductRepository(f.store),
		memory.NewCategoryRepository(f.store),
		f.gateway,
		exporter,
		fixedClock,
	)
}

func (f *fixture) lots() *LotUseCase {
	return NewLotUseCase(memory.NewLotRepository(f.store), f.gateway, fixedClock)
}
