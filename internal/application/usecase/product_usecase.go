package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/inventory"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

const (
	msgProductRequired  = "Código, nombre y categoría son requeridos"
	msgCategoryMissing  = "La categoría no existe"
	msgProductDuplicate = "El código del producto ya existe"
	msgProductNotFound  = "Producto no encontrado"
	msgProductInUse     = "No se puede eliminar el producto porque tiene lotes asociados"
)

// ProductUseCase CRUD de productos y vista de stock.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	users      UserResolver
	exporter   StockExporter
	clock      inventory.Clock
}

// NewProductUseCase construye el caso de uso. exporter puede ser nil si no se expone la exportación.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	users UserResolver,
	exporter StockExporter,
	clock inventory.Clock,
) *ProductUseCase {
	if clock == nil {
		clock = inventory.SystemClock
	}
	return &ProductUseCase{products: products, categories: categories, users: users, exporter: exporter, clock: clock}
}

// List devuelve los productos más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	ps, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(ps), nil
}

// GetByID devuelve el producto con categoría, creador y lotes.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound(msgProductNotFound)
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Create valida la categoría y registra al usuario autenticado como creador.
func (uc *ProductUseCase) Create(ctx context.Context, identity *entity.Identity, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Codigo)
	name := strings.TrimSpace(in.NombreArticulo)
	if code == "" || name == "" || in.CategoriaID == nil || *in.CategoriaID <= 0 {
		return nil, domain.Validation(msgProductRequired)
	}
	if err := uc.requireCategory(ctx, *in.CategoriaID); err != nil {
		return nil, err
	}
	user, err := uc.users.ResolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{
		Code:        code,
		Name:        name,
		Description: strings.TrimSpace(in.Descripcion),
		Active:      true,
		CategoryID:  in.CategoriaID,
		CreatorID:   &user.ID,
	}
	if in.Activo != nil {
		p.Active = *in.Activo
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, productWriteError(err, domain.Validation(msgCategoryMissing))
	}
	return uc.GetByID(ctx, p.ID)
}

// Update aplica solo los campos presentes; si cambia la categoría se verifica que exista.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound(msgProductNotFound)
	}
	if in.CategoriaID != nil {
		if err := uc.requireCategory(ctx, *in.CategoriaID); err != nil {
			return nil, err
		}
		p.CategoryID = in.CategoriaID
	}
	if in.Codigo != nil {
		p.Code = strings.TrimSpace(*in.Codigo)
	}
	if in.NombreArticulo != nil {
		p.Name = strings.TrimSpace(*in.NombreArticulo)
	}
	if in.Descripcion != nil {
		p.Description = strings.TrimSpace(*in.Descripcion)
	}
	if in.Activo != nil {
		p.Active = *in.Activo
	}
	if p.Code == "" || p.Name == "" {
		return nil, domain.Validation(msgProductRequired)
	}
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, productWriteError(err, domain.Validation(msgCategoryMissing))
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina el producto si no tiene lotes.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.products.CountLots(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Conflict(msgProductInUse)
	}
	return productWriteError(uc.products.Delete(ctx, id), domain.Conflict(msgProductInUse))
}

// StockView une productos activos con sus lotes con existencias y calcula el estado de vencimiento.
func (uc *ProductUseCase) StockView(ctx context.Context) ([]dto.StockRow, error) {
	ps, err := uc.products.ListActiveWithLots(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromStockEntries(inventory.BuildStockEntries(ps, uc.clock())), nil
}

// StockExport devuelve la vista de stock como libro .xlsx.
func (uc *ProductUseCase) StockExport(ctx context.Context) ([]byte, error) {
	if uc.exporter == nil {
		return nil, errors.New("exportación de stock no configurada")
	}
	rows, err := uc.StockView(ctx)
	if err != nil {
		return nil, err
	}
	data, err := uc.exporter.StockWorkbook(rows)
	if err != nil {
		return nil, fmt.Errorf("generar libro de stock: %w", err)
	}
	return data, nil
}

func (uc *ProductUseCase) requireCategory(ctx context.Context, id int64) error {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.Validation(msgCategoryMissing)
	}
	return nil
}

// productWriteError traduce errores del repositorio; onForeignKey depende de la operación.
func productWriteError(err, onForeignKey error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicate):
		return domain.Conflict(msgProductDuplicate)
	case errors.Is(err, domain.ErrForeignKey):
		return onForeignKey
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound(msgProductNotFound)
	}
	return err
}
