package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/infrastructure/memory"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) GetUser(ctx context.Context, token string) (*entity.Identity, error) {
	args := m.Called(ctx, token)
	id, _ := args.Get(0).(*entity.Identity)
	return id, args.Error(1)
}

func (m *mockProvider) CreateUser(ctx context.Context, email, password string) (*entity.Identity, error) {
	args := m.Called(ctx, email, password)
	id, _ := args.Get(0).(*entity.Identity)
	return id, args.Error(1)
}

func (m *mockProvider) DeleteUser(ctx context.Context, authUID string) error {
	return m.Called(ctx, authUID).Error(0)
}

func (m *mockProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

func newGateway(t *testing.T) (*Gateway, *mockProvider, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	p := new(mockProvider)
	return NewGateway(p, memory.NewUserRepository(store), nil), p, store
}

func seedUser(t *testing.T, store *memory.Store, authUID, role string) *entity.User {
	t.Helper()
	u := &entity.User{AuthUID: authUID, Username: authUID, Email: authUID + "@example.com", Role: role, Active: true}
	require.NoError(t, memory.NewUserRepository(store).Create(context.Background(), u))
	return u
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer  abc "))
	assert.Equal(t, "", BearerToken(""))
	assert.Equal(t, "", BearerToken("Bearer "))
}

func TestAuthenticate_TokenVacio(t *testing.T) {
	g, p, _ := newGateway(t)

	_, err := g.Authenticate(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, MsgTokenRequired, msg)
	p.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestAuthenticate_ProveedorRechaza(t *testing.T) {
	g, p, _ := newGateway(t)
	p.On("GetUser", mock.Anything, "malo").Return(nil, &ProviderError{Status: 401, Message: "invalid JWT"})

	_, err := g.Authenticate(context.Background(), "malo")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	p.AssertExpectations(t)
}

func TestAuthenticate_ProveedorCaido(t *testing.T) {
	g, p, _ := newGateway(t)
	p.On("GetUser", mock.Anything, "tok").Return(nil, errors.New("dial tcp: timeout"))

	_, err := g.Authenticate(context.Background(), "tok")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthenticate_OK(t *testing.T) {
	g, p, _ := newGateway(t)
	p.On("GetUser", mock.Anything, "tok").Return(&entity.Identity{Subject: "uid-1", Email: "a@b.co"}, nil)

	id, err := g.Authenticate(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", id.Subject)
}

func TestAuthorizeAdmin(t *testing.T) {
	g, _, store := newGateway(t)
	seedUser(t, store, "admin-1", entity.RoleAdmin)
	seedUser(t, store, "user-1", entity.RoleUsuario)
	ctx := context.Background()

	u, err := g.AuthorizeAdmin(ctx, &entity.Identity{Subject: "admin-1"})
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	_, err = g.AuthorizeAdmin(ctx, &entity.Identity{Subject: "user-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = g.AuthorizeAdmin(ctx, &entity.Identity{Subject: "sin-fila"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVerify_UsaEmailDelProveedor(t *testing.T) {
	g, _, store := newGateway(t)
	seedUser(t, store, "uid-9", entity.RoleUsuario)

	u, err := g.Verify(context.Background(), &entity.Identity{Subject: "uid-9", Email: "nuevo@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "nuevo@example.com", u.Email)

	_, err = g.Verify(context.Background(), &entity.Identity{Subject: "otro"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, MsgUserNotInDB, msg)
}

func TestSignIn(t *testing.T) {
	g, p, _ := newGateway(t)
	ctx := context.Background()

	_, err := g.SignIn(ctx, " ", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p.On("SignIn", mock.Anything, "a@b.co", "mala").
		Return(nil, &ProviderError{Status: 400, Message: "Invalid login credentials"})
	_, err = g.SignIn(ctx, "a@b.co", "mala")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, "Invalid login credentials", msg)

	p.On("SignIn", mock.Anything, "a@b.co", "buena").
		Return(&entity.Session{AccessToken: "tok", Identity: entity.Identity{Subject: "uid"}}, nil)
	s, err := g.SignIn(ctx, "a@b.co", "buena")
	require.NoError(t, err)
	assert.Equal(t, "tok", s.AccessToken)
}
