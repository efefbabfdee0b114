package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/inventory"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

const (
	msgLotRequired       = "Todos los campos son requeridos"
	msgLotInvalidDate    = "Fecha de vencimiento inválida"
	msgLotInvalidStatus  = "Estado de lote inválido"
	msgLotDuplicate      = "El número de lote ya existe"
	msgLotProductMissing = "El producto seleccionado no existe"
	msgLotNotFound       = "Lote no encontrado"
	msgLotInvalidDays    = "El parámetro dias debe ser un entero no negativo"
	msgLotInUse          = "No se puede eliminar el lote porque tiene movimientos de stock"
)

// LotUseCase libro de lotes: alta, edición, borrado y alertas de vencimiento.
// El stock actual solo lo modifica el flujo de salidas.
type LotUseCase struct {
	lots  repository.LotRepository
	users UserResolver
	clock inventory.Clock
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(lots repository.LotRepository, users UserResolver, clock inventory.Clock) *LotUseCase {
	if clock == nil {
		clock = inventory.SystemClock
	}
	return &LotUseCase{lots: lots, users: users, clock: clock}
}

// List ordena por vencimiento ascendente.
func (uc *LotUseCase) List(ctx context.Context) ([]dto.LotResponse, error) {
	ls, err := uc.lots.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromLots(ls), nil
}

// ListByProduct lotes de un producto.
func (uc *LotUseCase) ListByProduct(ctx context.Context, productID int64) ([]dto.LotResponse, error) {
	ls, err := uc.lots.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return dto.FromLots(ls), nil
}

// GetByID devuelve el lote con su producto y creador.
func (uc *LotUseCase) GetByID(ctx context.Context, id int64) (*dto.LotResponse, error) {
	l, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromLot(l)
	return &out, nil
}

func (uc *LotUseCase) get(ctx context.Context, id int64) (*entity.Lot, error) {
	l, err := uc.lots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.NotFound(msgLotNotFound)
	}
	return l, nil
}

// Create registra un lote con stock igual a la cantidad inicial y estado disponible.
func (uc *LotUseCase) Create(ctx context.Context, identity *entity.Identity, in dto.CreateLotRequest) (*dto.LotResponse, error) {
	number := strings.TrimSpace(in.NumeroLote)
	if in.IDProducto <= 0 || number == "" || strings.TrimSpace(in.FechaVencimiento) == "" || in.CantidadInicial.IsZero() {
		return nil, domain.Validation(msgLotRequired)
	}
	expiry, err := inventory.ParseDate(in.FechaVencimiento)
	if err != nil {
		return nil, domain.Validation(msgLotInvalidDate)
	}
	if err := inventory.ValidateExpiry(expiry, uc.clock()); err != nil {
		return nil, err
	}
	if err := inventory.ValidateQuantity(in.CantidadInicial); err != nil {
		return nil, err
	}
	user, err := uc.users.ResolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	l := &entity.Lot{
		ProductID:       in.IDProducto,
		Number:          number,
		ExpiryDate:      expiry,
		InitialQuantity: in.CantidadInicial,
		CurrentStock:    in.CantidadInicial,
		Status:          entity.LotStatusAvailable,
		CreatorID:       &user.ID,
	}
	if err := uc.lots.Create(ctx, l); err != nil {
		return nil, lotWriteError(err)
	}
	return uc.GetByID(ctx, l.ID)
}

// Update cambia número, vencimiento o estado; la cantidad inicial y el stock no se editan.
func (uc *LotUseCase) Update(ctx context.Context, id int64, in dto.UpdateLotRequest) (*dto.LotResponse, error) {
	l, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FechaVencimiento != nil {
		expiry, err := inventory.ParseDate(*in.FechaVencimiento)
		if err != nil {
			return nil, domain.Validation(msgLotInvalidDate)
		}
		if err := inventory.ValidateExpiry(expiry, uc.clock()); err != nil {
			return nil, err
		}
		l.ExpiryDate = expiry
	}
	if in.Estado != nil {
		if !entity.ValidLotStatus(*in.Estado) {
			return nil, domain.Validation(msgLotInvalidStatus)
		}
		l.Status = *in.Estado
	}
	if in.NumeroLote != nil {
		number := strings.TrimSpace(*in.NumeroLote)
		if number == "" {
			return nil, domain.Validation(msgLotRequired)
		}
		l.Number = number
	}
	if err := uc.lots.Update(ctx, l); err != nil {
		return nil, lotWriteError(err)
	}
	return uc.GetByID(ctx, id)
}

// Delete borra un lote solo si no tuvo movimientos.
func (uc *LotUseCase) Delete(ctx context.Context, id int64) error {
	l, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := inventory.CanDeleteLot(l); err != nil {
		return err
	}
	// Un lote recibido por una entrada sigue referenciado por su detalle aunque conserve todo el stock.
	err = uc.lots.Delete(ctx, id)
	if errors.Is(err, domain.ErrForeignKey) {
		return domain.Conflict(msgLotInUse)
	}
	return lotWriteError(err)
}

// ListExpiring lotes disponibles que vencen entre hoy y hoy+days (inclusive).
func (uc *LotUseCase) ListExpiring(ctx context.Context, days int) ([]dto.LotResponse, error) {
	if days < 0 {
		return nil, domain.Validation(msgLotInvalidDays)
	}
	from := inventory.DateOnly(uc.clock())
	to := from.AddDate(0, 0, days)
	ls, err := uc.lots.ListExpiring(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return dto.FromLots(ls), nil
}

func lotWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicate):
		return domain.Conflict(msgLotDuplicate)
	case errors.Is(err, domain.ErrForeignKey):
		return domain.Validation(msgLotProductMissing)
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound(msgLotNotFound)
	}
	return err
}
