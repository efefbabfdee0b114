package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/memory"
)

func TestCategoryUseCase_CrearYListar(t *testing.T) {
	f := newFixture(t)
	uc := NewCategoryUseCase(memory.NewCategoryRepository(f.store))
	ctx := context.Background()

	desc := "  Material de curación "
	out, err := uc.Create(ctx, dto.CategoryRequest{Nombre: " Insumos ", Descripcion: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Insumos", out.Nombre)
	assert.Equal(t, "Material de curación", out.Descripcion)
	assert.True(t, out.Activo)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Insumos", list[0].Nombre)
}

func TestCategoryUseCase_Validaciones(t *testing.T) {
	f := newFixture(t)
	uc := NewCategoryUseCase(memory.NewCategoryRepository(f.store))
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CategoryRequest{Nombre: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CategoryRequest{Nombre: "Medicamentos"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, "Ya existe una categoría con este nombre", msg)

	_, err = uc.Update(ctx, 999, dto.CategoryRequest{Nombre: "Otra"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_ActualizarConservaActivo(t *testing.T) {
	f := newFixture(t)
	uc := NewCategoryUseCase(memory.NewCategoryRepository(f.store))
	ctx := context.Background()

	off := false
	out, err := uc.Update(ctx, f.category.ID, dto.CategoryRequest{Nombre: "Fármacos", Activo: &off})
	require.NoError(t, err)
	assert.False(t, out.Activo)

	out, err = uc.Update(ctx, f.category.ID, dto.CategoryRequest{Nombre: "Fármacos"})
	require.NoError(t, err)
	assert.False(t, out.Activo)
	assert.Equal(t, "Fármacos", out.Nombre)
}

func TestCategoryUseCase_EliminarConProductos(t *testing.T) {
	f := newFixture(t)
	uc := NewCategoryUseCase(memory.NewCategoryRepository(f.store))
	ctx := context.Background()

	_, err := f.products(nil).Create(ctx, f.identity, dto.CreateProductRequest{
		Codigo: "P-1", NombreArticulo: "Paracetamol", CategoriaID: &f.category.ID,
	})
	require.NoError(t, err)

	err = uc.Delete(ctx, f.category.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.ErrorIs(t, uc.Delete(ctx, 999), domain.ErrNotFound)
}
