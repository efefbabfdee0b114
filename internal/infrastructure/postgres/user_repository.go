package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

var (
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.CredentialRepository = (*CredentialRepo)(nil)
)

const userColumns = `id_usuario, auth_uid, username, email, nombre, apellido, rol, activo, fecha_creacion`

// UserRepo implementación del puerto UserRepository sobre la tabla usuarios.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.AuthUID, &u.Username, &u.Email, &u.Nombre, &u.Apellido,
		&u.Role, &u.Active, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserta el usuario; password_hash queda en 'auth_managed' porque la contraseña la guarda el proveedor.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO usuarios (auth_uid, username, email, nombre, apellido, rol, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_usuario, fecha_creacion`
	err := r.q.QueryRow(ctx, query, u.AuthUID, u.Username, u.Email, u.Nombre, u.Apellido, u.Role, u.Active).
		Scan(&u.ID, &u.CreatedAt)
	return translate("insert usuario", err)
}

// GetByID obtiene un usuario por id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id_usuario = $1`, id)
}

// GetByAuthUID obtiene un usuario por el sujeto del proveedor de identidad.
func (r *UserRepo) GetByAuthUID(ctx context.Context, authUID string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE auth_uid = $1`, authUID)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// List devuelve todos los usuarios, más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY fecha_creacion DESC, id_usuario DESC`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var out []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// SetActive actualiza el flag activo y devuelve la fila resultante.
func (r *UserRepo) SetActive(ctx context.Context, id int64, active bool) (*entity.User, error) {
	query := `UPDATE usuarios SET activo = $2 WHERE id_usuario = $1 RETURNING ` + userColumns
	u, err := scanUser(r.q.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update usuario activo: %w", err)
	}
	return u, nil
}

// CredentialRepo credenciales del proveedor local sobre credenciales_locales.
type CredentialRepo struct {
	q Querier
}

// NewCredentialRepository construye el adaptador.
func NewCredentialRepository(q Querier) *CredentialRepo {
	return &CredentialRepo{q: q}
}

func (r *CredentialRepo) Create(ctx context.Context, c *entity.Credential) error {
	query := `
		INSERT INTO credenciales_locales (auth_uid, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING fecha_creacion`
	err := r.q.QueryRow(ctx, query, c.AuthUID, c.Email, c.PasswordHash).Scan(&c.CreatedAt)
	return translate("insert credencial", err)
}

func (r *CredentialRepo) GetByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	return r.getOne(ctx, `WHERE lower(email) = lower($1)`, email)
}

func (r *CredentialRepo) GetByAuthUID(ctx context.Context, authUID string) (*entity.Credential, error) {
	return r.getOne(ctx, `WHERE auth_uid = $1`, authUID)
}

func (r *CredentialRepo) getOne(ctx context.Context, where string, arg any) (*entity.Credential, error) {
	var c entity.Credential
	err := r.q.QueryRow(ctx, `SELECT auth_uid, email, password_hash, fecha_creacion FROM credenciales_locales `+where, arg).
		Scan(&c.AuthUID, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credencial: %w", err)
	}
	return &c, nil
}

func (r *CredentialRepo) Delete(ctx context.Context, authUID string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM credenciales_locales WHERE auth_uid = $1`, authUID)
	if err != nil {
		return fmt.Errorf("delete credencial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
