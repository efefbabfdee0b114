package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct{ s *Store }

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, r.s.productWithRelations(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	out := r.s.productWithRelations(p)
	out.Lots = r.lotsOf(id)
	return out, nil
}

func (r *ProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Code == code {
			return r.s.productWithRelations(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(p.Code, 0) {
		return domain.ErrDuplicate
	}
	if err := r.checkRefs(p); err != nil {
		return err
	}
	p.ID = r.s.next("productos")
	now := r.s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	stored := *p
	stored.Category, stored.Creator, stored.Lots = nil, nil, nil
	r.s.products[p.ID] = stored
	return nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.codeTaken(p.Code, p.ID) {
		return domain.ErrDuplicate
	}
	if err := r.checkRefs(p); err != nil {
		return err
	}
	p.CreatedAt = current.CreatedAt
	p.CreatorID = current.CreatorID
	p.UpdatedAt = r.s.now()
	stored := *p
	stored.Category, stored.Creator, stored.Lots = nil, nil, nil
	r.s.products[p.ID] = stored
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	if len(r.lotsOf(id)) > 0 {
		return domain.ErrForeignKey
	}
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepo) CountLots(_ context.Context, id int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.lotsOf(id)), nil
}

func (r *ProductRepo) ListActiveWithLots(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		if !p.Active {
			continue
		}
		lots := r.lotsOf(p.ID)
		if len(lots) == 0 {
			continue
		}
		pc := r.s.productWithRelations(p)
		pc.Lots = lots
		out = append(out, pc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepo) lotsOf(productID int64) []entity.Lot {
	var lots []entity.Lot
	for _, l := range r.s.lots {
		if l.ProductID == productID {
			lots = append(lots, l)
		}
	}
	sort.Slice(lots, func(i, j int) bool { return lots[i].ExpiryDate.Before(lots[j].ExpiryDate) })
	return lots
}

func (r *ProductRepo) codeTaken(code string, exceptID int64) bool {
	for _, p := range r.s.products {
		if p.Code == code && p.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *ProductRepo) checkRefs(p *entity.Product) error {
	if p.CategoryID != nil {
		if _, ok := r.s.categories[*p.CategoryID]; !ok {
			return domain.ErrForeignKey
		}
	}
	if p.CreatorID != nil {
		if _, ok := r.s.users[*p.CreatorID]; !ok {
			return domain.ErrForeignKey
		}
	}
	return nil
}
