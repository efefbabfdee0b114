package postgres

import (
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

// userRef columnas username, nombre y apellido de un LEFT JOIN a usuarios.
type userRef struct {
	username, nombre, apellido *string
}

func (u *userRef) dest() []any { return []any{&u.username, &u.nombre, &u.apellido} }

func (u *userRef) summary() *entity.UserSummary {
	if u.username == nil {
		return nil
	}
	s := &entity.UserSummary{Username: *u.username}
	if u.nombre != nil {
		s.Nombre = *u.nombre
	}
	if u.apellido != nil {
		s.Apellido = *u.apellido
	}
	return s
}

const lotSelect = `
	SELECT l.id_lote, l.id_producto, l.numero_lote, l.fecha_vencimiento, l.cantidad_inicial,
	       l.stock_actual, l.estado, l.id_usuario_creador, l.fecha_creacion,
	       p.codigo, p.nombre_articulo, p.descripcion, p.activo, p.categoria_id,
	       u.username, u.nombre, u.apellido
	FROM lotes l
	JOIN productos p ON p.id_producto = l.id_producto
	LEFT JOIN usuarios u ON u.id_usuario = l.id_usuario_creador`

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var (
		l       entity.Lot
		p       entity.Product
		creator userRef
	)
	dest := []any{
		&l.ID, &l.ProductID, &l.Number, &l.ExpiryDate, &l.InitialQuantity,
		&l.CurrentStock, &l.Status, &l.CreatorID, &l.CreatedAt,
		&p.Code, &p.Name, &p.Description, &p.Active, &p.CategoryID,
	}
	if err := row.Scan(append(dest, creator.dest()...)...); err != nil {
		return nil, err
	}
	p.ID = l.ProductID
	l.Product = &p
	l.Creator = creator.summary()
	return &l, nil
}

func collectLots(rows pgx.Rows) ([]*entity.Lot, error) {
	defer rows.Close()
	var out []*entity.Lot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

const productSelect = `
	SELECT p.id_producto, p.codigo, p.nombre_articulo, p.descripcion, p.activo, p.categoria_id,
	       p.id_usuario_creador, p.fecha_creacion, p.fecha_actualizacion,
	       c.nombre, c.descripcion, c.activo, c.fecha_actualizacion,
	       u.username, u.nombre, u.apellido
	FROM productos p
	LEFT JOIN categorias c ON c.id_categoria = p.categoria_id
	LEFT JOIN usuarios u ON u.id_usuario = p.id_usuario_creador`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p       entity.Product
		cat     entity.Category
		catName *string
		catDesc *string
		catAct  *bool
		catUpd  *time.Time
		creator userRef
	)
	dest := []any{
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Active, &p.CategoryID,
		&p.CreatorID, &p.CreatedAt, &p.UpdatedAt,
		&catName, &catDesc, &catAct, &catUpd,
	}
	if err := row.Scan(append(dest, creator.dest()...)...); err != nil {
		return nil, err
	}
	if p.CategoryID != nil && catName != nil {
		cat.ID = *p.CategoryID
		cat.Name = *catName
		if catDesc != nil {
			cat.Description = *catDesc
		}
		cat.Active = catAct != nil && *catAct
		if catUpd != nil {
			cat.UpdatedAt = *catUpd
		}
		p.Category = &cat
	}
	p.Creator = creator.summary()
	return &p, nil
}
