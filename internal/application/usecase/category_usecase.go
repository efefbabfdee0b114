package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

const (
	msgCategoryNameRequired = "El nombre de la categoría es requerido"
	msgCategoryDuplicate    = "Ya existe una categoría con este nombre"
	msgCategoryNotFound     = "Categoría no encontrada"
	msgCategoryInUse        = "No se puede eliminar la categoría porque tiene productos asociados"
)

// CategoryUseCase CRUD de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	cs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromCategories(cs), nil
}

// GetByID obtiene una categoría.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromCategory(c)
	return &out, nil
}

func (uc *CategoryUseCase) get(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound(msgCategoryNotFound)
	}
	return c, nil
}

// Create crea la categoría; activo por defecto true.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Nombre)
	if name == "" {
		return nil, domain.Validation(msgCategoryNameRequired)
	}
	c := &entity.Category{Name: name, Active: true}
	if in.Descripcion != nil {
		c.Description = strings.TrimSpace(*in.Descripcion)
	}
	if in.Activo != nil {
		c.Active = *in.Activo
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, categoryWriteError(err)
	}
	out := dto.FromCategory(c)
	return &out, nil
}

// Update reemplaza nombre y descripción; activo solo cambia si viene en el body.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Nombre)
	if name == "" {
		return nil, domain.Validation(msgCategoryNameRequired)
	}
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.Description = ""
	if in.Descripcion != nil {
		c.Description = strings.TrimSpace(*in.Descripcion)
	}
	if in.Activo != nil {
		c.Active = *in.Activo
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, categoryWriteError(err)
	}
	out := dto.FromCategory(c)
	return &out, nil
}

// Delete elimina la categoría si ningún producto la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Conflict(msgCategoryInUse)
	}
	return categoryWriteError(uc.repo.Delete(ctx, id))
}

func categoryWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicate):
		return domain.Conflict(msgCategoryDuplicate)
	case errors.Is(err, domain.ErrForeignKey):
		return domain.Conflict(msgCategoryInUse)
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound(msgCategoryNotFound)
	}
	return err
}
