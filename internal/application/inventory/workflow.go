package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/inventario-lotes-api/internal/application/saga"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	domaininv "github.com/jhoicas/inventario-lotes-api/internal/domain/inventory"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
)

// Estados de una solicitud de registro de movimiento.
const (
	StateValidating     = "VALIDATING"
	StateResolvingLines = "RESOLVING_LINES"
	StateHeaderCreated  = "HEADER_CREATED"
	StateLinesCommitted = "LINES_COMMITTED"
	StateRolledBack     = "ROLLED_BACK"
)

// Tipos de movimiento para logs y métricas.
const (
	KindEntrada = "entrada"
	KindSalida  = "salida"
)

const (
	msgActaDuplicate = "El número de acta ya existe"
	msgLinesEmpty    = "Debe incluir al menos un producto en los detalles"
	msgLotDuplicate  = "El número de lote ya existe"
	msgLotMissing    = "Uno de los lotes no existe"
)

// tracker sigue la máquina de estados de una solicitud y registra su estado final.
type tracker struct {
	kind    string
	state   string
	log     *logger.Logger
	metrics Recorder
}

func newTracker(kind string, log *logger.Logger, metrics Recorder) *tracker {
	return &tracker{kind: kind, state: StateValidating, log: log, metrics: metrics}
}

func (t *tracker) enter(state string) {
	t.log.Debug().Str("movimiento", t.kind).Str("desde", t.state).Str("hacia", state).Msg("transición")
	t.state = state
}

// done registra el estado final. Un error antes del encabezado deja el estado en que se rechazó.
func (t *tracker) done(err error) {
	if t.metrics != nil {
		t.metrics.IncMovement(t.kind, t.state)
	}
	if err != nil && t.state != StateRolledBack {
		t.log.Debug().Err(err).Str("movimiento", t.kind).Str("estado", t.state).Msg("movimiento rechazado")
	}
}

// rollback compensa los pasos ejecutados y devuelve siempre la causa original.
func (t *tracker) rollback(ctx context.Context, sg *saga.Saga, cause error) error {
	t.enter(StateRolledBack)
	if cerr := sg.Compensate(ctx, cause); cerr != nil {
		t.log.Error().Err(cerr).AnErr("cause", cause).Str("movimiento", t.kind).Msg("compensación incompleta")
	}
	return cause
}

// lineError antepone el número de detalle (1-based) al mensaje de validación.
func lineError(i int, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return &domain.Error{Kind: de.Kind, Message: fmt.Sprintf("Detalle %d: %s", i+1, de.Message), Cause: de.Cause}
	}
	return err
}

// headerInsert inserta un encabezado. Con auto, el número de acta se toma de suggest y se reintenta
// ante duplicado hasta attempts veces; sin auto, un duplicado es Conflict.
func headerInsert(ctx context.Context, auto bool, attempts int, suggest func(context.Context) (string, error), insert func(ctx context.Context, acta string) error, acta string) error {
	if !auto {
		return headerError(insert(ctx, acta))
	}
	var err error
	for i := 0; i < attempts; i++ {
		acta, err = suggest(ctx)
		if err != nil {
			return err
		}
		err = insert(ctx, acta)
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
	}
	return headerError(err)
}

func headerError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicate):
		return domain.Conflict(msgActaDuplicate)
	case errors.Is(err, domain.ErrForeignKey):
		return domain.Validation(msgLotMissing)
	}
	return err
}

// suggester calcula el siguiente número de acta de un tipo de movimiento.
type suggester struct {
	prefix string
	last   func(ctx context.Context, prefix string) (string, error)
	clock  domaininv.Clock
}

// next sugiere para el año indicado.
func (s suggester) next(ctx context.Context, year int) (string, error) {
	last, err := s.last(ctx, domaininv.ActaYearPrefix(s.prefix, year))
	if err != nil {
		return "", fmt.Errorf("buscar último número de acta: %w", err)
	}
	return domaininv.NextActaNumber(s.prefix, year, last), nil
}

// current sugiere para el año en curso.
func (s suggester) current(ctx context.Context) (string, error) {
	return s.next(ctx, s.clock().Year())
}
