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
	_ repository.EntradaRepository = (*EntradaRepo)(nil)
	_ repository.SalidaRepository  = (*SalidaRepo)(nil)
)

// lineSelect arma el SELECT de detalles para la tabla indicada (detalle_entradas o detalle_salidas).
func lineSelect(table, idCol, headerCol string) string {
	return fmt.Sprintf(`
		SELECT d.%[2]s, d.%[3]s, d.id_lote, d.cantidad, d.id_usuario_registrador,
		       l.id_producto, l.numero_lote, l.fecha_vencimiento, l.cantidad_inicial, l.stock_actual, l.estado,
		       p.codigo, p.nombre_articulo
		FROM %[1]s d
		JOIN lotes l ON l.id_lote = d.id_lote
		JOIN productos p ON p.id_producto = l.id_producto
		WHERE d.%[3]s = ANY($1)
		ORDER BY d.%[2]s`, table, idCol, headerCol)
}

func scanLine(rows pgx.Rows, ref *entity.Lot, id, header, lot, by *int64, qty any) error {
	var p entity.Product
	if err := rows.Scan(id, header, lot, qty, by,
		&ref.ProductID, &ref.Number, &ref.ExpiryDate, &ref.InitialQuantity, &ref.CurrentStock, &ref.Status,
		&p.Code, &p.Name); err != nil {
		return err
	}
	ref.ID = *lot
	p.ID = ref.ProductID
	ref.Product = &p
	return nil
}

// lastActa devuelve el mayor número de acta con el prefijo dado según orden lexicográfico.
func lastActa(ctx context.Context, q Querier, table, col, prefix string) (string, error) {
	var last string
	query := fmt.Sprintf(`SELECT %[2]s FROM %[1]s WHERE %[2]s LIKE $1 ORDER BY %[2]s DESC LIMIT 1`, table, col)
	err := q.QueryRow(ctx, query, prefix+"%").Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("ultimo numero de acta: %w", err)
	}
	return last, nil
}

func deleteHeader(ctx context.Context, q Querier, table, idCol string, id int64) error {
	tag, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idCol), id)
	if err != nil {
		return translate("delete "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EntradaRepo entradas y detalle_entradas sobre PostgreSQL.
type EntradaRepo struct {
	q Querier
}

// NewEntradaRepository construye el adaptador.
func NewEntradaRepository(q Querier) *EntradaRepo {
	return &EntradaRepo{q: q}
}

const entradaSelect = `
	SELECT e.id_entrada, e.numero_acta, e.fecha_entrada, e.proveedor, COALESCE(e.archivo_acta, ''),
	       e.id_usuario_registrador, e.fecha_creacion, u.username, u.nombre, u.apellido
	FROM entradas e
	LEFT JOIN usuarios u ON u.id_usuario = e.id_usuario_registrador`

func scanEntrada(row pgx.Row) (*entity.Entrada, error) {
	var (
		e   entity.Entrada
		reg userRef
	)
	dest := []any{&e.ID, &e.ActaNumber, &e.Date, &e.Supplier, &e.Attachment, &e.RegisteredBy, &e.CreatedAt}
	if err := row.Scan(append(dest, reg.dest()...)...); err != nil {
		return nil, err
	}
	e.Registrar = reg.summary()
	return &e, nil
}

// List devuelve las entradas por fecha descendente con sus detalles.
func (r *EntradaRepo) List(ctx context.Context) ([]*entity.Entrada, error) {
	rows, err := r.q.Query(ctx, entradaSelect+` ORDER BY e.fecha_entrada DESC, e.id_entrada DESC`)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	defer rows.Close()
	var out []*entity.Entrada
	for rows.Next() {
		e, err := scanEntrada(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, r.attachLines(ctx, out)
}

func (r *EntradaRepo) GetByID(ctx context.Context, id int64) (*entity.Entrada, error) {
	e, err := scanEntrada(r.q.QueryRow(ctx, entradaSelect+` WHERE e.id_entrada = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrada: %w", err)
	}
	if err := r.attachLines(ctx, []*entity.Entrada{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EntradaRepo) attachLines(ctx context.Context, entradas []*entity.Entrada) error {
	if len(entradas) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Entrada, len(entradas))
	ids := make([]int64, 0, len(entradas))
	for _, e := range entradas {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}
	rows, err := r.q.Query(ctx, lineSelect("detalle_entradas", "id_detalle_entrada", "id_entrada"), ids)
	if err != nil {
		return fmt.Errorf("list detalle_entradas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			line entity.EntradaLine
			lot  entity.Lot
		)
		if err := scanLine(rows, &lot, &line.ID, &line.EntradaID, &line.LotID, &line.RegisteredBy, &line.Quantity); err != nil {
			return fmt.Errorf("scan detalle_entrada: %w", err)
		}
		line.Lot = &lot
		if e, ok := byID[line.EntradaID]; ok {
			e.Lines = append(e.Lines, line)
		}
	}
	return rows.Err()
}

func (r *EntradaRepo) Create(ctx context.Context, e *entity.Entrada) error {
	var attachment *string
	if e.Attachment != "" {
		attachment = &e.Attachment
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO entradas (numero_acta, fecha_entrada, proveedor, archivo_acta, id_usuario_registrador)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_entrada, fecha_creacion`,
		e.ActaNumber, e.Date, e.Supplier, attachment, e.RegisteredBy).Scan(&e.ID, &e.CreatedAt)
	return translate("insert entrada", err)
}

// CreateLines inserta todos los detalles en un único INSERT multi-fila; falla completo o no inserta nada.
func (r *EntradaRepo) CreateLines(ctx context.Context, lines []entity.EntradaLine) error {
	if len(lines) == 0 {
		return nil
	}
	args := make([]any, 0, len(lines)*4)
	for _, l := range lines {
		args = append(args, l.EntradaID, l.LotID, l.Quantity, l.RegisteredBy)
	}
	query := `INSERT INTO detalle_entradas (id_entrada, id_lote, cantidad, id_usuario_registrador) VALUES ` +
		bulkPlaceholders(len(lines), 4) + ` RETURNING id_detalle_entrada`
	return scanLineIDs(ctx, r.q, "insert detalle_entradas", query, args, func(i int, id int64) { lines[i].ID = id })
}

func (r *EntradaRepo) Delete(ctx context.Context, id int64) error {
	return deleteHeader(ctx, r.q, "entradas", "id_entrada", id)
}

func (r *EntradaRepo) LastActaNumber(ctx context.Context, prefix string) (string, error) {
	return lastActa(ctx, r.q, "entradas", "numero_acta", prefix)
}

// SalidaRepo salidas y detalle_salidas sobre PostgreSQL.
type SalidaRepo struct {
	q Querier
}

// NewSalidaRepository construye el adaptador.
func NewSalidaRepository(q Querier) *SalidaRepo {
	return &SalidaRepo{q: q}
}

const salidaSelect = `
	SELECT s.id_salida, s.numero_acta_salida, s.fecha_salida, s.beneficiario, s.lugar_salida,
	       s.id_usuario_registrador, s.fecha_creacion, u.username, u.nombre, u.apellido
	FROM salidas s
	LEFT JOIN usuarios u ON u.id_usuario = s.id_usuario_registrador`

func scanSalida(row pgx.Row) (*entity.Salida, error) {
	var (
		s   entity.Salida
		reg userRef
	)
	dest := []any{&s.ID, &s.ActaNumber, &s.Date, &s.Beneficiary, &s.Place, &s.RegisteredBy, &s.CreatedAt}
	if err := row.Scan(append(dest, reg.dest()...)...); err != nil {
		return nil, err
	}
	s.Registrar = reg.summary()
	return &s, nil
}

func (r *SalidaRepo) List(ctx context.Context) ([]*entity.Salida, error) {
	rows, err := r.q.Query(ctx, salidaSelect+` ORDER BY s.fecha_salida DESC, s.id_salida DESC`)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()
	var out []*entity.Salida
	for rows.Next() {
		s, err := scanSalida(rows)
		if err != nil {
			return nil, fmt.Errorf("scan salida: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, r.attachLines(ctx, out)
}

func (r *SalidaRepo) GetByID(ctx context.Context, id int64) (*entity.Salida, error) {
	s, err := scanSalida(r.q.QueryRow(ctx, salidaSelect+` WHERE s.id_salida = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salida: %w", err)
	}
	if err := r.attachLines(ctx, []*entity.Salida{s}); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SalidaRepo) attachLines(ctx context.Context, salidas []*entity.Salida) error {
	if len(salidas) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Salida, len(salidas))
	ids := make([]int64, 0, len(salidas))
	for _, s := range salidas {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}
	rows, err := r.q.Query(ctx, lineSelect("detalle_salidas", "id_detalle_salida", "id_salida"), ids)
	if err != nil {
		return fmt.Errorf("list detalle_salidas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			line entity.SalidaLine
			lot  entity.Lot
		)
		if err := scanLine(rows, &lot, &line.ID, &line.SalidaID, &line.LotID, &line.RegisteredBy, &line.Quantity); err != nil {
			return fmt.Errorf("scan detalle_salida: %w", err)
		}
		line.Lot = &lot
		if s, ok := byID[line.SalidaID]; ok {
			s.Lines = append(s.Lines, line)
		}
	}
	return rows.Err()
}

func (r *SalidaRepo) Create(ctx context.Context, s *entity.Salida) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO salidas (numero_acta_salida, fecha_salida, beneficiario, lugar_salida, id_usuario_registrador)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_salida, fecha_creacion`,
		s.ActaNumber, s.Date, s.Beneficiary, s.Place, s.RegisteredBy).Scan(&s.ID, &s.CreatedAt)
	return translate("insert salida", err)
}

func (r *SalidaRepo) CreateLines(ctx context.Context, lines []entity.SalidaLine) error {
	if len(lines) == 0 {
		return nil
	}
	args := make([]any, 0, len(lines)*4)
	for _, l := range lines {
		args = append(args, l.SalidaID, l.LotID, l.Quantity, l.RegisteredBy)
	}
	query := `INSERT INTO detalle_salidas (id_salida, id_lote, cantidad, id_usuario_registrador) VALUES ` +
		bulkPlaceholders(len(lines), 4) + ` RETURNING id_detalle_salida`
	return scanLineIDs(ctx, r.q, "insert detalle_salidas", query, args, func(i int, id int64) { lines[i].ID = id })
}

func (r *SalidaRepo) Delete(ctx context.Context, id int64) error {
	return deleteHeader(ctx, r.q, "salidas", "id_salida", id)
}

func (r *SalidaRepo) LastActaNumber(ctx context.Context, prefix string) (string, error) {
	return lastActa(ctx, r.q, "salidas", "numero_acta_salida", prefix)
}

func scanLineIDs(ctx context.Context, q Querier, op, query string, args []any, set func(i int, id int64)) error {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return translate(op, err)
	}
	defer rows.Close()
	i := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return translate(op, err)
		}
		set(i, id)
		i++
	}
	return translate(op, rows.Err())
}
