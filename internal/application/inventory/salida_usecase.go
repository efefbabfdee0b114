package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/application/saga"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-lotes-api/internal/domain/inventory"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

const (
	msgSalidaRequired = "Número de acta, fecha, beneficiario y detalles son requeridos"
	msgSalidaNotFound = "Salida no encontrada"
	msgSalidaBadDate  = "Fecha de salida inválida"
	msgSalidaLine     = "id_lote y cantidad son requeridos"
	msgSalidaQuantity = "La cantidad debe ser mayor a 0"
	msgLotNotFoundF   = "Lote no encontrado: %d"
)

// SalidaUseCase registra salidas contra lotes existentes.
type SalidaUseCase struct {
	salidas repository.SalidaRepository
	lots    repository.LotRepository
	users   UserResolver
	opts    Options
	acta    suggester
}

// NewSalidaUseCase construye el caso de uso sobre los repositorios del almacén.
func NewSalidaUseCase(repos repository.Set, users UserResolver, opts Options) *SalidaUseCase {
	opts = opts.withDefaults()
	return &SalidaUseCase{
		salidas: repos.Salidas,
		lots:    repos.Lots,
		users:   users,
		opts:    opts,
		acta:    suggester{prefix: domaininv.PrefixSalida, last: repos.Salidas.LastActaNumber, clock: opts.Clock},
	}
}

// List salidas por fecha descendente.
func (uc *SalidaUseCase) List(ctx context.Context) ([]dto.SalidaResponse, error) {
	ss, err := uc.salidas.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromSalidas(ss), nil
}

// GetByID salida completa.
func (uc *SalidaUseCase) GetByID(ctx context.Context, id int64) (*dto.SalidaResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromSalida(s)
	return &out, nil
}

func (uc *SalidaUseCase) get(ctx context.Context, id int64) (*entity.Salida, error) {
	s, err := uc.salidas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound(msgSalidaNotFound)
	}
	return s, nil
}

// Delete borra la salida y sus detalles. Si las salidas descuentan stock, lo devuelve a los lotes.
func (uc *SalidaUseCase) Delete(ctx context.Context, id int64) error {
	var lines []entity.SalidaLine
	if uc.opts.Policy.DebitStockOnSalida {
		s, err := uc.get(ctx, id)
		if err != nil {
			return err
		}
		lines = s.Lines
	}
	if err := uc.salidas.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound(msgSalidaNotFound)
		}
		return err
	}
	for _, ln := range lines {
		if err := uc.lots.CreditStock(ctx, ln.LotID, ln.Quantity); err != nil {
			uc.opts.Log.Error().Err(err).Int64("salida_id", id).Int64("lote_id", ln.LotID).Msg("no se pudo devolver stock")
		}
	}
	return nil
}

// SuggestActaNumber siguiente número de acta de salida del año en curso (SAL-AAAA-NNN).
func (uc *SalidaUseCase) SuggestActaNumber(ctx context.Context) (string, error) {
	return uc.acta.current(ctx)
}

// NextActaSuggestion siguiente número de acta de salida para un año dado.
func (uc *SalidaUseCase) NextActaSuggestion(ctx context.Context, year int) (string, error) {
	return uc.acta.next(ctx, year)
}

// ActaPDF genera el acta de la salida.
func (uc *SalidaUseCase) ActaPDF(ctx context.Context, id int64) ([]byte, error) {
	if uc.opts.Renderer == nil {
		return nil, errors.New("generador de actas no configurado")
	}
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.opts.Renderer.SalidaActa(s)
}

// Create registra la salida. Todos los lotes se verifican antes de la primera escritura; una
// cantidad mayor al stock actual rechaza la solicitud completa sin escribir nada.
func (uc *SalidaUseCase) Create(ctx context.Context, identity *entity.Identity, in dto.CreateSalidaRequest) (out *dto.SalidaResponse, err error) {
	tr := newTracker(KindSalida, uc.opts.Log, uc.opts.Metrics)
	defer func() { tr.done(err) }()

	if (strings.TrimSpace(in.NumeroActaSalida) == "" && !in.NumeroActaAuto) ||
		strings.TrimSpace(in.FechaSalida) == "" || strings.TrimSpace(in.Beneficiario) == "" || in.Detalles == nil {
		return nil, domain.Validation(msgSalidaRequired)
	}
	if len(in.Detalles) == 0 {
		return nil, domain.Validation(msgLinesEmpty)
	}
	date, err := domaininv.ParseDate(in.FechaSalida)
	if err != nil {
		return nil, domain.Validation(msgSalidaBadDate)
	}
	for i, d := range in.Detalles {
		if d.IDLote <= 0 || d.Cantidad.IsZero() {
			return nil, lineError(i, domain.Validation(msgSalidaLine))
		}
		if !d.Cantidad.IsPositive() {
			return nil, lineError(i, domain.Validation(msgSalidaQuantity))
		}
	}

	tr.enter(StateResolvingLines)
	// Con descuento de stock, varios detalles sobre el mismo lote se validan por su suma.
	requested := make(map[int64]decimal.Decimal, len(in.Detalles))
	for _, d := range in.Detalles {
		lot, err := uc.lots.GetByID(ctx, d.IDLote)
		if err != nil {
			return nil, err
		}
		if lot == nil {
			return nil, domain.Validation(fmt.Sprintf(msgLotNotFoundF, d.IDLote))
		}
		qty := d.Cantidad
		if uc.opts.Policy.DebitStockOnSalida {
			qty = requested[d.IDLote].Add(d.Cantidad)
			requested[d.IDLote] = qty
		}
		if err := domaininv.HasStockFor(lot, qty); err != nil {
			return nil, err
		}
	}
	user, err := uc.users.ResolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	header := &entity.Salida{
		ActaNumber:   strings.TrimSpace(in.NumeroActaSalida),
		Date:         date,
		Beneficiary:  strings.TrimSpace(in.Beneficiario),
		Place:        strings.TrimSpace(in.LugarSalida),
		RegisteredBy: user.ID,
	}
	err = headerInsert(ctx, in.NumeroActaAuto, uc.opts.Policy.ActaRetryAttempts, uc.acta.current,
		func(ctx context.Context, acta string) error {
			header.ActaNumber = acta
			return uc.salidas.Create(ctx, header)
		}, header.ActaNumber)
	if err != nil {
		return nil, err
	}

	tr.enter(StateHeaderCreated)
	sg := saga.New("salida", uc.opts.Log, uc.opts.Metrics)
	headerID := header.ID
	sg.Add("encabezado", func(ctx context.Context) error {
		return uc.salidas.Delete(ctx, headerID)
	})

	payload := make([]entity.SalidaLine, 0, len(in.Detalles))
	for i, d := range in.Detalles {
		if uc.opts.Policy.DebitStockOnSalida {
			if err := uc.debit(ctx, sg, d); err != nil {
				return nil, tr.rollback(ctx, sg, lineError(i, err))
			}
		}
		payload = append(payload, entity.SalidaLine{
			SalidaID:     header.ID,
			LotID:        d.IDLote,
			Quantity:     d.Cantidad,
			RegisteredBy: user.ID,
		})
	}

	if err := uc.salidas.CreateLines(ctx, payload); err != nil {
		return nil, tr.rollback(ctx, sg, headerError(err))
	}
	sg.Complete()
	tr.enter(StateLinesCommitted)

	uc.opts.Log.Info().
		Int64("salida_id", header.ID).
		Str("numero_acta", header.ActaNumber).
		Int("detalles", len(payload)).
		Msg("salida registrada")
	return uc.GetByID(ctx, header.ID)
}

// debit descuenta stock con una actualización condicional y registra su devolución como compensación.
func (uc *SalidaUseCase) debit(ctx context.Context, sg *saga.Saga, d dto.SalidaLineRequest) error {
	ok, err := uc.lots.DebitStock(ctx, d.IDLote, d.Cantidad)
	if err != nil {
		return err
	}
	if !ok {
		lot, err := uc.lots.GetByID(ctx, d.IDLote)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.Validation(fmt.Sprintf(msgLotNotFoundF, d.IDLote))
		}
		if err := domaininv.HasStockFor(lot, d.Cantidad); err != nil {
			return err
		}
		return &domain.Error{Kind: domain.ErrInvalidInput, Message: "Stock insuficiente", Cause: domain.ErrInsufficientStock}
	}
	lotID, qty := d.IDLote, d.Cantidad
	sg.Add(fmt.Sprintf("débito lote %d", lotID), func(ctx context.Context) error {
		return uc.lots.CreditStock(ctx, lotID, qty)
	})
	return nil
}
