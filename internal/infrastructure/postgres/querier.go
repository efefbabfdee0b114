package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

// Querier superficie común de *pgxpool.Pool, *pgx.Conn y pgx.Tx usada por los repositorios.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewSet construye todos los repositorios sobre el mismo Querier.
func NewSet(q Querier) repository.Set {
	return repository.Set{
		Users:       NewUserRepository(q),
		Credentials: NewCredentialRepository(q),
		Categories:  NewCategoryRepository(q),
		Products:    NewProductRepository(q),
		Lots:        NewLotRepository(q),
		Entradas:    NewEntradaRepository(q),
		Salidas:     NewSalidaRepository(q),
	}
}
