// Package memory implementa los puertos de repositorio en memoria con las mismas restricciones
// que el esquema PostgreSQL (unicidad, claves foráneas y borrado en cascada de detalles).
// Se usa con STORE_DRIVER=memory y como almacén de los tests de casos de uso y HTTP.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu sync.RWMutex

	seq map[string]int64
	now func() time.Time

	users        map[int64]entity.User
	credentials  map[string]entity.Credential // por auth_uid
	categories   map[int64]entity.Category
	products     map[int64]entity.Product
	lots         map[int64]entity.Lot
	entradas     map[int64]entity.Entrada
	entradaLines map[int64]entity.EntradaLine
	salidas      map[int64]entity.Salida
	salidaLines  map[int64]entity.SalidaLine
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		seq:          map[string]int64{},
		now:          time.Now,
		users:        map[int64]entity.User{},
		credentials:  map[string]entity.Credential{},
		categories:   map[int64]entity.Category{},
		products:     map[int64]entity.Product{},
		lots:         map[int64]entity.Lot{},
		entradas:     map[int64]entity.Entrada{},
		entradaLines: map[int64]entity.EntradaLine{},
		salidas:      map[int64]entity.Salida{},
		salidaLines:  map[int64]entity.SalidaLine{},
	}
}

// Counts número de filas por tabla. Útil en tests para verificar que no hubo escrituras.
type Counts struct {
	Users, Categories, Products, Lots, Entradas, EntradaLines, Salidas, SalidaLines int
}

// Counts devuelve el número de filas de cada tabla.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{
		Users:        len(s.users),
		Categories:   len(s.categories),
		Products:     len(s.products),
		Lots:         len(s.lots),
		Entradas:     len(s.entradas),
		EntradaLines: len(s.entradaLines),
		Salidas:      len(s.salidas),
		SalidaLines:  len(s.salidaLines),
	}
}

// next devuelve el siguiente id de la secuencia de la tabla. Requiere el lock de escritura.
func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func (s *Store) summaryOf(userID *int64) *entity.UserSummary {
	if userID == nil {
		return nil
	}
	return s.summaryByID(*userID)
}

func (s *Store) summaryByID(id int64) *entity.UserSummary {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &entity.UserSummary{Username: u.Username, Nombre: u.Nombre, Apellido: u.Apellido}
}

// lotWithProduct copia el lote con su producto y creador. Requiere al menos el lock de lectura.
func (s *Store) lotWithProduct(l entity.Lot) *entity.Lot {
	out := l
	if p, ok := s.products[l.ProductID]; ok {
		pc := p
		out.Product = &pc
	}
	out.Creator = s.summaryOf(l.CreatorID)
	return &out
}

func (s *Store) productWithRelations(p entity.Product) *entity.Product {
	out := p
	out.Lots = nil
	if p.CategoryID != nil {
		if c, ok := s.categories[*p.CategoryID]; ok {
			cc := c
			out.Category = &cc
		}
	}
	out.Creator = s.summaryOf(p.CreatorID)
	return &out
}

// NewSet construye todos los repositorios sobre el mismo almacén.
func NewSet(s *Store) repository.Set {
	return repository.Set{
		Users:       NewUserRepository(s),
		Credentials: NewCredentialRepository(s),
		Categories:  NewCategoryRepository(s),
		Products:    NewProductRepository(s),
		Lots:        NewLotRepository(s),
		Entradas:    NewEntradaRepository(s),
		Salidas:     NewSalidaRepository(s),
	}
}
