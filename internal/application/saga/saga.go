// Package saga modela escrituras de varios pasos sin transacción: cada paso ejecutado registra su
// acción inversa y, ante un fallo posterior, Compensate las ejecuta en orden inverso.
//
// Las compensaciones son de mejor esfuerzo: cada fallo se registra por separado, no se reintenta
// y nunca sustituye al error original que provocó la compensación.
package saga

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
)

// UndoFunc acción inversa de un paso.
type UndoFunc func(ctx context.Context) error

// Recorder recibe el resultado de cada compensación (implementado por pkg/metrics).
type Recorder interface {
	IncCompensation(saga, step, outcome string)
}

// Step paso registrado con su compensación.
type Step struct {
	Name string
	Undo UndoFunc
}

// Saga lista tipada de pasos compensables de una única operación lógica.
type Saga struct {
	name     string
	steps    []Step
	log      *logger.Logger
	recorder Recorder
	done     bool
}

// New crea una saga. log y recorder pueden ser nil.
func New(name string, log *logger.Logger, recorder Recorder) *Saga {
	if log == nil {
		log = logger.Nop()
	}
	return &Saga{name: name, log: log, recorder: recorder}
}

// Add registra la compensación del paso que acaba de completarse.
func (s *Saga) Add(name string, undo UndoFunc) {
	s.steps = append(s.steps, Step{Name: name, Undo: undo})
}

// Len número de pasos registrados.
func (s *Saga) Len() int { return len(s.steps) }

// Steps nombres de los pasos en orden de registro.
func (s *Saga) Steps() []string {
	out := make([]string, len(s.steps))
	for i, st := range s.steps {
		out[i] = st.Name
	}
	return out
}

// Compensate ejecuta las compensaciones en orden inverso una sola vez. Corre aunque ctx esté
// cancelado y devuelve los fallos combinados (nil si todas fueron bien).
func (s *Saga) Compensate(ctx context.Context, cause error) error {
	if s.done {
		return nil
	}
	s.done = true
	ctx = context.WithoutCancel(ctx)

	var errs error
	for i := len(s.steps) - 1; i >= 0; i-- {
		st := s.steps[i]
		if err := st.Undo(ctx); err != nil {
			s.log.Error().
				Err(err).
				AnErr("cause", cause).
				Str("saga", s.name).
				Str("step", st.Name).
				Msg("compensación fallida")
			s.record(st.Name, "error")
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", st.Name, err))
			continue
		}
		s.log.Warn().
			AnErr("cause", cause).
			Str("saga", s.name).
			Str("step", st.Name).
			Msg("paso compensado")
		s.record(st.Name, "ok")
	}
	return errs
}

// Complete marca la saga como terminada con éxito; Compensate ya no tendrá efecto.
func (s *Saga) Complete() {
	s.done = true
}

func (s *Saga) record(step, outcome string) {
	if s.recorder != nil {
		s.recorder.IncCompensation(s.name, step, outcome)
	}
}
