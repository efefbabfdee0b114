package usecase

import (
	"context"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

// UserResolver resuelve la identidad autenticada a su fila del directorio (auth.Gateway).
type UserResolver interface {
	ResolveUser(ctx context.Context, identity *entity.Identity) (*entity.User, error)
}

// StockExporter genera el libro de cálculo de la vista de stock.
type StockExporter interface {
	StockWorkbook(rows []dto.StockRow) ([]byte, error)
}
