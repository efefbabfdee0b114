package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

var (
	_ repository.EntradaRepository = (*EntradaRepo)(nil)
	_ repository.SalidaRepository  = (*SalidaRepo)(nil)
)

// EntradaRepo entradas en memoria.
type EntradaRepo struct{ s *Store }

// NewEntradaRepository construye el repositorio.
func NewEntradaRepository(s *Store) *EntradaRepo { return &EntradaRepo{s: s} }

func (r *EntradaRepo) List(_ context.Context) ([]*entity.Entrada, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Entrada, 0, len(r.s.entradas))
	for _, e := range r.s.entradas {
		out = append(out, r.withLines(e))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *EntradaRepo) GetByID(_ context.Context, id int64) (*entity.Entrada, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.entradas[id]
	if !ok {
		return nil, nil
	}
	return r.withLines(e), nil
}

func (r *EntradaRepo) Create(_ context.Context, e *entity.Entrada) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.entradas {
		if ex.ActaNumber == e.ActaNumber {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.users[e.RegisteredBy]; !ok {
		return domain.ErrForeignKey
	}
	e.ID = r.s.next("entradas")
	e.CreatedAt = r.s.now()
	stored := *e
	stored.Lines, stored.Registrar = nil, nil
	r.s.entradas[e.ID] = stored
	return nil
}

// CreateLines inserta todo o nada, como una sentencia INSERT multi-fila.
func (r *EntradaRepo) CreateLines(_ context.Context, lines []entity.EntradaLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, line := range lines {
		if _, ok := r.s.entradas[line.EntradaID]; !ok {
			return domain.ErrForeignKey
		}
		if _, ok := r.s.lots[line.LotID]; !ok {
			return domain.ErrForeignKey
		}
	}
	for i := range lines {
		lines[i].ID = r.s.next("detalle_entradas")
		stored := lines[i]
		stored.Lot = nil
		r.s.entradaLines[stored.ID] = stored
	}
	return nil
}

func (r *EntradaRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.entradas[id]; !ok {
		return domain.ErrNotFound
	}
	for lid, line := range r.s.entradaLines {
		if line.EntradaID == id {
			delete(r.s.entradaLines, lid)
		}
	}
	delete(r.s.entradas, id)
	return nil
}

func (r *EntradaRepo) LastActaNumber(_ context.Context, prefix string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	last := ""
	for _, e := range r.s.entradas {
		if strings.HasPrefix(e.ActaNumber, prefix) && e.ActaNumber > last {
			last = e.ActaNumber
		}
	}
	return last, nil
}

func (r *EntradaRepo) withLines(e entity.Entrada) *entity.Entrada {
	out := e
	out.Registrar = r.s.summaryByID(e.RegisteredBy)
	out.Lines = nil
	for _, line := range r.s.entradaLines {
		if line.EntradaID != e.ID {
			continue
		}
		lc := line
		if l, ok := r.s.lots[line.LotID]; ok {
			lc.Lot = r.s.lotWithProduct(l)
		}
		out.Lines = append(out.Lines, lc)
	}
	sort.Slice(out.Lines, func(i, j int) bool { return out.Lines[i].ID < out.Lines[j].ID })
	return &out
}

// SalidaRepo salidas en memoria.
type SalidaRepo struct{ s *Store }

// NewSalidaRepository construye el repositorio.
func NewSalidaRepository(s *Store) *SalidaRepo { return &SalidaRepo{s: s} }

func (r *SalidaRepo) List(_ context.Context) ([]*entity.Salida, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Salida, 0, len(r.s.salidas))
	for _, sa := range r.s.salidas {
		out = append(out, r.withLines(sa))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *SalidaRepo) GetByID(_ context.Context, id int64) (*entity.Salida, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sa, ok := r.s.salidas[id]
	if !ok {
		return nil, nil
	}
	return r.withLines(sa), nil
}

func (r *SalidaRepo) Create(_ context.Context, sa *entity.Salida) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.salidas {
		if ex.ActaNumber == sa.ActaNumber {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.users[sa.RegisteredBy]; !ok {
		return domain.ErrForeignKey
	}
	sa.ID = r.s.next("salidas")
	sa.CreatedAt = r.s.now()
	stored := *sa
	stored.Lines, stored.Registrar = nil, nil
	r.s.salidas[sa.ID] = stored
	return nil
}

func (r *SalidaRepo) CreateLines(_ context.Context, lines []entity.SalidaLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, line := range lines {
		if _, ok := r.s.salidas[line.SalidaID]; !ok {
			return domain.ErrForeignKey
		}
		if _, ok := r.s.lots[line.LotID]; !ok {
			return domain.ErrForeignKey
		}
	}
	for i := range lines {
		lines[i].ID = r.s.next("detalle_salidas")
		stored := lines[i]
		stored.Lot = nil
		r.s.salidaLines[stored.ID] = stored
	}
	return nil
}

func (r *SalidaRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.salidas[id]; !ok {
		return domain.ErrNotFound
	}
	for lid, line := range r.s.salidaLines {
		if line.SalidaID == id {
			delete(r.s.salidaLines, lid)
		}
	}
	delete(r.s.salidas, id)
	return nil
}

func (r *SalidaRepo) LastActaNumber(_ context.Context, prefix string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	last := ""
	for _, sa := range r.s.salidas {
		if strings.HasPrefix(sa.ActaNumber, prefix) && sa.ActaNumber > last {
			last = sa.ActaNumber
		}
	}
	return last, nil
}

func (r *SalidaRepo) withLines(sa entity.Salida) *entity.Salida {
	out := sa
	out.Registrar = r.s.summaryByID(sa.RegisteredBy)
	out.Lines = nil
	for _, line := range r.s.salidaLines {
		if line.SalidaID != sa.ID {
			continue
		}
		lc := line
		if l, ok := r.s.lots[line.LotID]; ok {
			lc.Lot = r.s.lotWithProduct(l)
		}
		out.Lines = append(out.Lines, lc)
	}
	sort.Slice(out.Lines, func(i, j int) bool { return out.Lines[i].ID < out.Lines[j].ID })
	return &out
}
