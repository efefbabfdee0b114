package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo lotes en memoria.
type LotRepo struct{ s *Store }

// NewLotRepository construye el repositorio.
func NewLotRepository(s *Store) *LotRepo { return &LotRepo{s: s} }

func (r *LotRepo) List(_ context.Context) ([]*entity.Lot, error) {
	return r.filter(func(entity.Lot) bool { return true }), nil
}

func (r *LotRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.Lot, error) {
	return r.filter(func(l entity.Lot) bool { return l.ProductID == productID }), nil
}

func (r *LotRepo) ListExpiring(_ context.Context, from, to time.Time) ([]*entity.Lot, error) {
	return r.filter(func(l entity.Lot) bool {
		return l.Status == entity.LotStatusAvailable &&
			!l.ExpiryDate.Before(from) && !l.ExpiryDate.After(to)
	}), nil
}

func (r *LotRepo) GetByID(_ context.Context, id int64) (*entity.Lot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.lots[id]
	if !ok {
		return nil, nil
	}
	return r.s.lotWithProduct(l), nil
}

func (r *LotRepo) Create(_ context.Context, l *entity.Lot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.numberTaken(l.Number, 0) {
		return domain.ErrDuplicate
	}
	if _, ok := r.s.products[l.ProductID]; !ok {
		return domain.ErrForeignKey
	}
	if l.CreatorID != nil {
		if _, ok := r.s.users[*l.CreatorID]; !ok {
			return domain.ErrForeignKey
		}
	}
	l.ID = r.s.next("lotes")
	l.CreatedAt = r.s.now()
	stored := *l
	stored.Product, stored.Creator = nil, nil
	r.s.lots[l.ID] = stored
	return nil
}

func (r *LotRepo) Update(_ context.Context, l *entity.Lot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.lots[l.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.numberTaken(l.Number, l.ID) {
		return domain.ErrDuplicate
	}
	current.Number = l.Number
	current.ExpiryDate = l.ExpiryDate
	current.Status = l.Status
	r.s.lots[l.ID] = current
	return nil
}

func (r *LotRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lots[id]; !ok {
		return domain.ErrNotFound
	}
	for _, line := range r.s.entradaLines {
		if line.LotID == id {
			return domain.ErrForeignKey
		}
	}
	for _, line := range r.s.salidaLines {
		if line.LotID == id {
			return domain.ErrForeignKey
		}
	}
	delete(r.s.lots, id)
	return nil
}

func (r *LotRepo) DebitStock(_ context.Context, id int64, qty decimal.Decimal) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lots[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if l.CurrentStock.LessThan(qty) {
		return false, nil
	}
	l.CurrentStock = l.CurrentStock.Sub(qty)
	if l.CurrentStock.IsZero() && l.Status == entity.LotStatusAvailable {
		l.Status = entity.LotStatusDepleted
	}
	r.s.lots[id] = l
	return true, nil
}

func (r *LotRepo) CreditStock(_ context.Context, id int64, qty decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lots[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.CurrentStock = l.CurrentStock.Add(qty)
	if l.Status == entity.LotStatusDepleted && l.CurrentStock.IsPositive() {
		l.Status = entity.LotStatusAvailable
	}
	r.s.lots[id] = l
	return nil
}

func (r *LotRepo) filter(keep func(entity.Lot) bool) []*entity.Lot {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Lot, 0)
	for _, l := range r.s.lots {
		if keep(l) {
			out = append(out, r.s.lotWithProduct(l))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExpiryDate.Equal(out[j].ExpiryDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].ExpiryDate.Before(out[j].ExpiryDate)
	})
	return out
}

func (r *LotRepo) numberTaken(number string, exceptID int64) bool {
	for _, l := range r.s.lots {
		if l.Number == number && l.ID != exceptID {
			return true
		}
	}
	return false
}
