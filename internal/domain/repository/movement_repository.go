package repository

import (
	"context"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

// EntradaRepository puerto de persistencia de entradas y sus detalles.
type EntradaRepository interface {
	// List ordena por fecha de entrada descendente e incluye detalles, lotes y productos.
	List(ctx context.Context) ([]*entity.Entrada, error)
	GetByID(ctx context.Context, id int64) (*entity.Entrada, error)
	// Create inserta solo el encabezado. domain.ErrDuplicate si el número de acta existe.
	Create(ctx context.Context, e *entity.Entrada) error
	// CreateLines inserta todos los detalles en una sola sentencia. domain.ErrForeignKey si un lote no existe.
	CreateLines(ctx context.Context, lines []entity.EntradaLine) error
	// Delete borra el encabezado y sus detalles en cascada. domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
	// LastActaNumber mayor número de acta (orden lexicográfico) que empieza por prefix, "" si no hay.
	LastActaNumber(ctx context.Context, prefix string) (string, error)
}

// SalidaRepository puerto de persistencia de salidas y sus detalles.
type SalidaRepository interface {
	List(ctx context.Context) ([]*entity.Salida, error)
	GetByID(ctx context.Context, id int64) (*entity.Salida, error)
	Create(ctx context.Context, s *entity.Salida) error
	CreateLines(ctx context.Context, lines []entity.SalidaLine) error
	Delete(ctx context.Context, id int64) error
	LastActaNumber(ctx context.Context, prefix string) (string, error)
}
