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
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.CredentialRepository = (*CredentialRepo)(nil)
)

// UserRepo directorio de usuarios en memoria.
type UserRepo struct{ s *Store }

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.users {
		if ex.AuthUID == u.AuthUID || ex.Username == u.Username || strings.EqualFold(ex.Email, u.Email) {
			return domain.ErrDuplicate
		}
	}
	u.ID = r.s.next("usuarios")
	if u.CreatedAt.IsZero() {
		u.CreatedAt = r.s.now()
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByAuthUID(_ context.Context, authUID string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.AuthUID == authUID {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		uc := u
		out = append(out, &uc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *UserRepo) SetActive(_ context.Context, id int64, active bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	u.Active = active
	r.s.users[id] = u
	return &u, nil
}

// CredentialRepo credenciales del proveedor local en memoria.
type CredentialRepo struct{ s *Store }

// NewCredentialRepository construye el repositorio.
func NewCredentialRepository(s *Store) *CredentialRepo { return &CredentialRepo{s: s} }

func (r *CredentialRepo) Create(_ context.Context, c *entity.Credential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.credentials {
		if strings.EqualFold(ex.Email, c.Email) {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.credentials[c.AuthUID]; ok {
		return domain.ErrDuplicate
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.s.now()
	}
	r.s.credentials[c.AuthUID] = *c
	return nil
}

func (r *CredentialRepo) GetByEmail(_ context.Context, email string) (*entity.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.credentials {
		if strings.EqualFold(c.Email, email) {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *CredentialRepo) GetByAuthUID(_ context.Context, authUID string) (*entity.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.credentials[authUID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CredentialRepo) Delete(_ context.Context, authUID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.credentials[authUID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.credentials, authUID)
	return nil
}
