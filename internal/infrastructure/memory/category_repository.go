package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías en memoria.
type CategoryRepo struct{ s *Store }

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(s *Store) *CategoryRepo { return &CategoryRepo{s: s} }

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return domain.ErrDuplicate
	}
	c.ID = r.s.next("categorias")
	c.UpdatedAt = r.s.now()
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.nameTaken(c.Name, c.ID) {
		return domain.ErrDuplicate
	}
	c.UpdatedAt = r.s.now()
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	if r.countProducts(id) > 0 {
		return domain.ErrForeignKey
	}
	delete(r.s.categories, id)
	return nil
}

func (r *CategoryRepo) CountProducts(_ context.Context, id int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.countProducts(id), nil
}

func (r *CategoryRepo) countProducts(id int64) int {
	n := 0
	for _, p := range r.s.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			n++
		}
	}
	return n
}

func (r *CategoryRepo) nameTaken(name string, exceptID int64) bool {
	for _, c := range r.s.categories {
		if c.Name == name && c.ID != exceptID {
			return true
		}
	}
	return false
}
