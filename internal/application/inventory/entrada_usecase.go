package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	"github.com/jhoicas/inventario-lotes-api/internal/application/saga"
	"github.com/jhoicas/inventario-lotes-api/internal/domain"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-lotes-api/internal/domain/inventory"
	"github.com/jhoicas/inventario-lotes-api/internal/domain/repository"
)

const (
	msgEntradaRequired  = "Número de acta, fecha, proveedor y detalles son requeridos"
	msgEntradaNotFound  = "Entrada no encontrada"
	msgEntradaBadDate   = "Fecha de entrada inválida"
	msgLineExisting     = "id_producto es requerido para productos existentes"
	msgLineNew          = "código, nombre y categoría son requeridos para productos nuevos"
	msgLineLotRequired  = "número de lote, fecha de vencimiento y cantidad son requeridos"
	msgLineBadExpiry    = "fecha de vencimiento inválida"
	msgLineProductCode  = "El código del producto ya existe"
	msgProductNotFoundF = "Producto no encontrado: %d"
)

// entradaLine detalle validado, listo para resolverse.
type entradaLine struct {
	kind        string
	productID   int64
	code        string
	name        string
	description string
	categoryID  int64
	lotNumber   string
	expiry      time.Time
	quantity    decimal.Decimal
}

// EntradaUseCase registra entradas: cada detalle crea un lote nuevo, y el producto si es nuevo.
type EntradaUseCase struct {
	entradas   repository.EntradaRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	lots       repository.LotRepository
	users      UserResolver
	opts       Options
	acta       suggester
}

// NewEntradaUseCase construye el caso de uso sobre los repositorios del almacén.
func NewEntradaUseCase(repos repository.Set, users UserResolver, opts Options) *EntradaUseCase {
	opts = opts.withDefaults()
	return &EntradaUseCase{
		entradas:   repos.Entradas,
		products:   repos.Products,
		categories: repos.Categories,
		lots:       repos.Lots,
		users:      users,
		opts:       opts,
		acta:       suggester{prefix: domaininv.PrefixEntrada, last: repos.Entradas.LastActaNumber, clock: opts.Clock},
	}
}

// List entradas por fecha descendente con detalles, lotes y productos.
func (uc *EntradaUseCase) List(ctx context.Context) ([]dto.EntradaResponse, error) {
	es, err := uc.entradas.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromEntradas(es), nil
}

// GetByID entrada completa.
func (uc *EntradaUseCase) GetByID(ctx context.Context, id int64) (*dto.EntradaResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromEntrada(e)
	return &out, nil
}

func (uc *EntradaUseCase) get(ctx context.Context, id int64) (*entity.Entrada, error) {
	e, err := uc.entradas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound(msgEntradaNotFound)
	}
	return e, nil
}

// Delete borra la entrada y sus detalles. Los lotes creados por ella se conservan.
func (uc *EntradaUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.entradas.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(msgEntradaNotFound)
	}
	return err
}

// SuggestActaNumber siguiente número de acta del año en curso (ACT-AAAA-NNN). Es solo orientativo.
func (uc *EntradaUseCase) SuggestActaNumber(ctx context.Context) (string, error) {
	return uc.acta.current(ctx)
}

// NextActaSuggestion siguiente número de acta para un año dado.
func (uc *EntradaUseCase) NextActaSuggestion(ctx context.Context, year int) (string, error) {
	return uc.acta.next(ctx, year)
}

// ActaPDF genera el acta de la entrada.
func (uc *EntradaUseCase) ActaPDF(ctx context.Context, id int64) ([]byte, error) {
	if uc.opts.Renderer == nil {
		return nil, errors.New("generador de actas no configurado")
	}
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.opts.Renderer.EntradaActa(e)
}

// Create registra la entrada:
//  1. valida encabezado y detalles sin escribir nada;
//  2. resuelve el usuario registrador;
//  3. inserta el encabezado (desde aquí cualquier fallo lo borra);
//  4. por cada detalle resuelve o crea el producto y crea su lote;
//  5. inserta todos los detalles en una sola escritura;
//  6. devuelve la entrada releída.
func (uc *EntradaUseCase) Create(ctx context.Context, identity *entity.Identity, in dto.CreateEntradaRequest) (out *dto.EntradaResponse, err error) {
	tr := newTracker(KindEntrada, uc.opts.Log, uc.opts.Metrics)
	defer func() { tr.done(err) }()

	date, lines, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	tr.enter(StateResolvingLines)
	user, err := uc.users.ResolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	header := &entity.Entrada{
		ActaNumber:   strings.TrimSpace(in.NumeroActa),
		Date:         date,
		Supplier:     strings.TrimSpace(in.Proveedor),
		RegisteredBy: user.ID,
	}
	if in.ArchivoActa != nil {
		header.Attachment = strings.TrimSpace(*in.ArchivoActa)
	}
	err = headerInsert(ctx, in.NumeroActaAuto, uc.opts.Policy.ActaRetryAttempts, uc.acta.current,
		func(ctx context.Context, acta string) error {
			header.ActaNumber = acta
			return uc.entradas.Create(ctx, header)
		}, header.ActaNumber)
	if err != nil {
		return nil, err
	}

	tr.enter(StateHeaderCreated)
	sg := saga.New("entrada", uc.opts.Log, uc.opts.Metrics)
	headerID := header.ID
	sg.Add("encabezado", func(ctx context.Context) error {
		return uc.entradas.Delete(ctx, headerID)
	})

	payload := make([]entity.EntradaLine, 0, len(lines))
	for i, ln := range lines {
		productID, err := uc.resolveProduct(ctx, sg, ln, user)
		if err != nil {
			return nil, tr.rollback(ctx, sg, lineError(i, err))
		}
		lot := &entity.Lot{
			ProductID:       productID,
			Number:          ln.lotNumber,
			ExpiryDate:      ln.expiry,
			InitialQuantity: ln.quantity,
			CurrentStock:    ln.quantity,
			Status:          entity.LotStatusAvailable,
			CreatorID:       &user.ID,
		}
		if err := uc.lots.Create(ctx, lot); err != nil {
			return nil, tr.rollback(ctx, sg, lineError(i, lotCreateError(err)))
		}
		if uc.opts.Policy.CompensateLotsOnEntrada {
			lotID := lot.ID
			sg.Add("lote "+lot.Number, func(ctx context.Context) error {
				return uc.lots.Delete(ctx, lotID)
			})
		}
		payload = append(payload, entity.EntradaLine{
			EntradaID:    header.ID,
			LotID:        lot.ID,
			Quantity:     ln.quantity,
			RegisteredBy: user.ID,
		})
	}

	if err := uc.entradas.CreateLines(ctx, payload); err != nil {
		return nil, tr.rollback(ctx, sg, headerError(err))
	}
	sg.Complete()
	tr.enter(StateLinesCommitted)

	uc.opts.Log.Info().
		Int64("entrada_id", header.ID).
		Str("numero_acta", header.ActaNumber).
		Int("detalles", len(payload)).
		Msg("entrada registrada")
	return uc.GetByID(ctx, header.ID)
}

func (uc *EntradaUseCase) validate(in dto.CreateEntradaRequest) (time.Time, []entradaLine, error) {
	if (strings.TrimSpace(in.NumeroActa) == "" && !in.NumeroActaAuto) ||
		strings.TrimSpace(in.FechaEntrada) == "" || strings.TrimSpace(in.Proveedor) == "" || in.Detalles == nil {
		return time.Time{}, nil, domain.Validation(msgEntradaRequired)
	}
	if len(in.Detalles) == 0 {
		return time.Time{}, nil, domain.Validation(msgLinesEmpty)
	}
	date, err := domaininv.ParseDate(in.FechaEntrada)
	if err != nil {
		return time.Time{}, nil, domain.Validation(msgEntradaBadDate)
	}
	today := uc.opts.Clock()
	lines := make([]entradaLine, 0, len(in.Detalles))
	for i, d := range in.Detalles {
		ln, err := parseEntradaLine(d, today)
		if err != nil {
			return time.Time{}, nil, lineError(i, err)
		}
		lines = append(lines, ln)
	}
	return date, lines, nil
}

func parseEntradaLine(d dto.EntradaLineRequest, today time.Time) (entradaLine, error) {
	ln := entradaLine{
		kind:        d.Tipo,
		code:        strings.TrimSpace(d.Codigo),
		name:        strings.TrimSpace(d.NombreArticulo),
		description: strings.TrimSpace(d.Descripcion),
		lotNumber:   strings.TrimSpace(d.NumeroLote),
		quantity:    d.Cantidad,
	}
	if ln.kind == "" {
		ln.kind = dto.LineKindNew
		if d.IDProducto != nil {
			ln.kind = dto.LineKindExisting
		}
	}
	switch ln.kind {
	case dto.LineKindExisting:
		if d.IDProducto == nil || *d.IDProducto <= 0 {
			return ln, domain.Validation(msgLineExisting)
		}
		ln.productID = *d.IDProducto
	case dto.LineKindNew:
		if ln.code == "" || ln.name == "" || d.CategoriaID == nil {
			return ln, domain.Validation(msgLineNew)
		}
		ln.categoryID = *d.CategoriaID
	default:
		return ln, domain.Validation(fmt.Sprintf("tipo de detalle inválido: %s", ln.kind))
	}
	if ln.lotNumber == "" || strings.TrimSpace(d.FechaVencimiento) == "" || d.Cantidad.IsZero() {
		return ln, domain.Validation(msgLineLotRequired)
	}
	expiry, err := domaininv.ParseDate(d.FechaVencimiento)
	if err != nil {
		return ln, domain.Validation(msgLineBadExpiry)
	}
	if err := domaininv.ValidateExpiry(expiry, today); err != nil {
		return ln, err
	}
	if err := domaininv.ValidateQuantity(d.Cantidad); err != nil {
		return ln, err
	}
	ln.expiry = expiry
	return ln, nil
}

// resolveProduct devuelve el producto del detalle. Un producto nuevo se reutiliza si ya existe uno
// con el mismo código; si su categoría no existe se crea sin categoría.
func (uc *EntradaUseCase) resolveProduct(ctx context.Context, sg *saga.Saga, ln entradaLine, user *entity.User) (int64, error) {
	if ln.kind == dto.LineKindExisting {
		p, err := uc.products.GetByID(ctx, ln.productID)
		if err != nil {
			return 0, err
		}
		if p == nil {
			return 0, domain.Validation(fmt.Sprintf(msgProductNotFoundF, ln.productID))
		}
		return p.ID, nil
	}

	existing, err := uc.products.GetByCode(ctx, ln.code)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	p := &entity.Product{
		Code:        ln.code,
		Name:        ln.name,
		Description: ln.description,
		Active:      true,
		CreatorID:   &user.ID,
	}
	cat, err := uc.categories.GetByID(ctx, ln.categoryID)
	if err != nil {
		return 0, err
	}
	if cat != nil {
		p.CategoryID = &cat.ID
	} else {
		uc.opts.Log.Warn().
			Int64("categoria_id", ln.categoryID).
			Str("codigo", ln.code).
			Msg("categoría inexistente, el producto se crea sin categoría")
	}
	if err := uc.products.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return 0, domain.Conflict(msgLineProductCode)
		}
		return 0, err
	}
	if uc.opts.Policy.CompensateLotsOnEntrada {
		productID := p.ID
		sg.Add("producto "+p.Code, func(ctx context.Context) error {
			return uc.products.Delete(ctx, productID)
		})
	}
	return p.ID, nil
}

func lotCreateError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return domain.Conflict(msgLotDuplicate)
	case errors.Is(err, domain.ErrForeignKey):
		return domain.Validation(msgLotMissing)
	}
	return err
}
