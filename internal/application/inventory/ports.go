// Package inventory implementa el flujo de movimientos (entradas y salidas) sobre lotes.
// Cada registro es una saga sin transacción: el encabezado se inserta primero y, si algo posterior
// falla, se deshacen los pasos ejecutados en orden inverso.
package inventory

import (
	"context"

	"github.com/jhoicas/inventario-lotes-api/internal/application/saga"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-lotes-api/internal/domain/inventory"
	"github.com/jhoicas/inventario-lotes-api/pkg/config"
	"github.com/jhoicas/inventario-lotes-api/pkg/logger"
)

// UserResolver resuelve la identidad autenticada a su fila del directorio (auth.Gateway).
type UserResolver interface {
	ResolveUser(ctx context.Context, identity *entity.Identity) (*entity.User, error)
}

// Recorder métricas del flujo (implementado por pkg/metrics).
type Recorder interface {
	saga.Recorder
	IncMovement(kind, state string)
}

// ActaRenderer genera el documento PDF de un acta.
type ActaRenderer interface {
	EntradaActa(e *entity.Entrada) ([]byte, error)
	SalidaActa(s *entity.Salida) ([]byte, error)
}

// Options dependencias opcionales compartidas por ambos casos de uso.
type Options struct {
	Policy   config.InventoryConfig
	Log      *logger.Logger
	Metrics  Recorder
	Renderer ActaRenderer
	Clock    domaininv.Clock
}

func (o Options) withDefaults() Options {
	if o.Log == nil {
		o.Log = logger.Nop()
	}
	if o.Clock == nil {
		o.Clock = domaininv.SystemClock
	}
	if o.Policy.ActaRetryAttempts < 1 {
		o.Policy.ActaRetryAttempts = 1
	}
	return o
}
