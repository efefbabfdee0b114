package inventory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

var today = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func lot(number string, expiry time.Time, initial, current int64) entity.Lot {
	return entity.Lot{
		Number:          number,
		ExpiryDate:      DateOnly(expiry),
		InitialQuantity: decimal.NewFromInt(initial),
		CurrentStock:    decimal.NewFromInt(current),
		Status:          entity.LotStatusAvailable,
	}
}

func TestExpiryStatusFor_Limites(t *testing.T) {
	cases := []struct {
		offset int
		want   string
	}{
		{-1, entity.ExpiryStatusExpired},
		{0, entity.ExpiryStatusExpiring},
		{30, entity.ExpiryStatusExpiring},
		{31, entity.ExpiryStatusValid},
	}
	for _, c := range cases {
		days := DaysUntil(today.AddDate(0, 0, c.offset), today)
		assert.Equal(t, c.offset, days)
		assert.Equal(t, c.want, ExpiryStatusFor(days), "offset %d", c.offset)
	}
}

func TestValidateExpiry(t *testing.T) {
	assert.ErrorIs(t, ValidateExpiry(today, today), domain.ErrInvalidInput, "hoy no es futura")
	assert.ErrorIs(t, ValidateExpiry(today.AddDate(0, 0, -3), today), domain.ErrInvalidInput)
	assert.NoError(t, ValidateExpiry(today.AddDate(0, 0, 1), today))
}

func TestValidateQuantity(t *testing.T) {
	assert.Error(t, ValidateQuantity(decimal.Zero))
	assert.Error(t, ValidateQuantity(decimal.NewFromInt(-2)))
	assert.NoError(t, ValidateQuantity(decimal.NewFromFloat(0.5)))
}

func TestCanDeleteLot(t *testing.T) {
	intacto := lot("L-1", today.AddDate(0, 1, 0), 10, 10)
	assert.NoError(t, CanDeleteLot(&intacto))

	movido := lot("L-2", today.AddDate(0, 1, 0), 10, 7)
	assert.ErrorIs(t, CanDeleteLot(&movido), domain.ErrConflict)
}

func TestHasStockFor(t *testing.T) {
	l := lot("L-5", today.AddDate(0, 2, 0), 5, 5)

	assert.NoError(t, HasStockFor(&l, decimal.NewFromInt(5)))

	err := HasStockFor(&l, decimal.NewFromInt(6))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, "Stock insuficiente en lote L-5. Disponible: 5, Solicitado: 6", msg)
}

func TestBuildStockEntries_FiltraYClasifica(t *testing.T) {
	p := &entity.Product{ID: 1, Name: "Guantes", Active: true, Lots: []entity.Lot{
		lot("A", today.AddDate(0, 0, -1), 10, 3),
		lot("B", today.AddDate(0, 0, 30), 10, 10),
		lot("C", today.AddDate(0, 0, 31), 10, 4),
		lot("D", today.AddDate(0, 0, 90), 10, 0),
	}}
	q := &entity.Product{ID: 2, Name: "Alcohol", Active: true, Lots: []entity.Lot{
		lot("E", today.AddDate(0, 0, 5), 2, 2),
	}}

	rows := BuildStockEntries([]*entity.Product{p, q}, today)

	require.Len(t, rows, 4, "el lote sin stock se excluye")
	assert.Equal(t, "E", rows[0].Lot.Number, "ordenado por nombre de producto")
	assert.Equal(t, entity.ExpiryStatusExpired, rows[1].ExpiryStatus)
	assert.Equal(t, entity.ExpiryStatusExpiring, rows[2].ExpiryStatus)
	assert.Equal(t, entity.ExpiryStatusValid, rows[3].ExpiryStatus)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", FormatDate(d))

	d, err = ParseDate("2024-12-31T08:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", FormatDate(d))

	_, err = ParseDate("31/12/2024")
	assert.Error(t, err)
}
