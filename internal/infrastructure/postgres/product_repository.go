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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve los productos con categoría y creador, más recientes primero.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productSelect+` ORDER BY p.fecha_creacion DESC, p.id_producto DESC`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	return collectProducts(rows)
}

// GetByID obtiene el producto con sus lotes.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := r.getOne(ctx, `WHERE p.id_producto = $1`, id)
	if err != nil || p == nil {
		return p, err
	}
	lots, err := r.lotsOf(ctx, []int64{p.ID})
	if err != nil {
		return nil, err
	}
	p.Lots = lots[p.ID]
	return p, nil
}

// GetByCode obtiene un producto por código, sin lotes.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.getOne(ctx, `WHERE p.codigo = $1`, code)
}

func (r *ProductRepo) getOne(ctx context.Context, where string, arg any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+" "+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO productos (codigo, nombre_articulo, descripcion, activo, categoria_id, id_usuario_creador)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_producto, fecha_creacion, fecha_actualizacion`
	err := r.q.QueryRow(ctx, query, p.Code, p.Name, p.Description, p.Active, p.CategoryID, p.CreatorID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return translate("insert producto", err)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE productos
		SET codigo = $2, nombre_articulo = $3, descripcion = $4, activo = $5, categoria_id = $6,
		    fecha_actualizacion = now()
		WHERE id_producto = $1
		RETURNING fecha_actualizacion`
	err := r.q.QueryRow(ctx, query, p.ID, p.Code, p.Name, p.Description, p.Active, p.CategoryID).
		Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return translate("update producto", err)
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id_producto = $1`, id)
	if err != nil {
		return translate("delete producto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) CountLots(ctx context.Context, id int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM lotes WHERE id_producto = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count lotes: %w", err)
	}
	return n, nil
}

// ListActiveWithLots productos activos con al menos un lote, ordenados por nombre, con sus lotes por vencimiento.
func (r *ProductRepo) ListActiveWithLots(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productSelect+`
		WHERE p.activo AND EXISTS (SELECT 1 FROM lotes l WHERE l.id_producto = p.id_producto)
		ORDER BY p.nombre_articulo, p.id_producto`)
	if err != nil {
		return nil, fmt.Errorf("list productos con lotes: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil || len(products) == 0 {
		return products, err
	}
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	lots, err := r.lotsOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		p.Lots = lots[p.ID]
	}
	return products, nil
}

func (r *ProductRepo) lotsOf(ctx context.Context, productIDs []int64) (map[int64][]entity.Lot, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id_lote, id_producto, numero_lote, fecha_vencimiento, cantidad_inicial, stock_actual,
		       estado, id_usuario_creador, fecha_creacion
		FROM lotes
		WHERE id_producto = ANY($1)
		ORDER BY fecha_vencimiento, id_lote`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list lotes de productos: %w", err)
	}
	defer rows.Close()
	out := make(map[int64][]entity.Lot, len(productIDs))
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Number, &l.ExpiryDate, &l.InitialQuantity,
			&l.CurrentStock, &l.Status, &l.CreatorID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		out[l.ProductID] = append(out[l.ProductID], l)
	}
	return out, rows.Err()
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
