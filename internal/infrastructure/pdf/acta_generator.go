// Package pdf genera el documento imprimible de un acta de entrada o salida.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización + tipo de acta │ N° Acta + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Proveedor | Beneficiario + Lugar              │
//	│  REGISTRADO POR                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Producto | Lote | Vence             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Detalles / Unidades                               │
//	│  FIRMAS: Entrega | Recibe                    QR del acta    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lotes-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// actaLine fila de la tabla, común a entradas y salidas.
type actaLine struct {
	quantity decimal.Decimal
	code     string
	product  string
	lot      string
	expiry   string
}

// acta datos normalizados de un documento.
type acta struct {
	title        string
	kind         string
	number       string
	date         string
	partyLabel   string
	party        string
	place        string
	registeredBy string
	deliverLabel string
	receiveLabel string
	lines        []actaLine
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoActaGenerator implementa inventory.ActaRenderer usando Maroto v2.
type MarotoActaGenerator struct {
	organization string
}

// NewMarotoActaGenerator construye el generador; organization encabeza cada acta.
func NewMarotoActaGenerator(organization string) *MarotoActaGenerator {
	return &MarotoActaGenerator{organization: organization}
}

// EntradaActa genera el acta de una entrada.
func (g *MarotoActaGenerator) EntradaActa(e *entity.Entrada) ([]byte, error) {
	a := acta{
		title:        "ACTA DE ENTRADA",
		kind:         "entrada",
		number:       e.ActaNumber,
		date:         e.Date.Format("02/01/2006"),
		partyLabel:   "PROVEEDOR",
		party:        e.Supplier,
		registeredBy: registrar(e.Registrar),
		deliverLabel: "Entrega (proveedor)",
		receiveLabel: "Recibe (bodega)",
	}
	for _, l := range e.Lines {
		a.lines = append(a.lines, lineFrom(l.Quantity, l.Lot))
	}
	return g.render(a)
}

// SalidaActa genera el acta de una salida.
func (g *MarotoActaGenerator) SalidaActa(s *entity.Salida) ([]byte, error) {
	a := acta{
		title:        "ACTA DE SALIDA",
		kind:         "salida",
		number:       s.ActaNumber,
		date:         s.Date.Format("02/01/2006"),
		partyLabel:   "BENEFICIARIO",
		party:        s.Beneficiary,
		place:        s.Place,
		registeredBy: registrar(s.Registrar),
		deliverLabel: "Entrega (bodega)",
		receiveLabel: "Recibe (beneficiario)",
	}
	for _, l := range s.Lines {
		a.lines = append(a.lines, lineFrom(l.Quantity, l.Lot))
	}
	return g.render(a)
}

func (g *MarotoActaGenerator) render(a acta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(a.title+" "+a.number, true).
		WithAuthor(g.organization, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(a))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(a))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(a.lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(a.lines))
	m.AddRows(line.NewRow(8))
	m.AddRows(signatureRow(a))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar acta %s: %w", a.number, err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: organización y tipo de acta (izq), número y fecha (der).
func (g *MarotoActaGenerator) headerRow(a acta) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(g.organization, "Inventario"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(a.title, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° DE ACTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(a.number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+a.date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partyRow: proveedor o beneficiario, lugar y registrador.
func partyRow(a acta) core.Row {
	detail := "Registrado por: " + nonEmpty(a.registeredBy, "—")
	if a.place != "" {
		detail = "Lugar: " + a.place + "   |   " + detail
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(a.partyLabel, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(a.party, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Right),
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Lote", 2, align.Left),
		h("Vence", 2, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por detalle.
func tableDetailRows(lines []actaLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(formatQuantity(l.quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.product, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.lot, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.expiry, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// totalsRow: número de detalles y unidades.
func totalsRow(lines []actaLine) core.Row {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.quantity)
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Right: 1})
	}
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(label("Detalles:"), label("Unidades:")),
		col.New(3).Add(value(fmt.Sprintf("%d", len(lines))), value(formatQuantity(total))),
	)
}

// signatureRow: líneas de firma y QR con el número de acta.
func signatureRow(a acta) core.Row {
	sign := func(label string) core.Col {
		return col.New(4).Add(
			text.New("______________________________", props.Text{Size: 9, Align: align.Center, Top: 18}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 24, Color: colorGray}),
		)
	}
	return row.New(40).Add(
		sign(a.deliverLabel),
		sign(a.receiveLabel),
		col.New(4).Add(code.NewQr(a.kind+":"+a.number, props.Rect{Percent: 80, Center: true})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func lineFrom(qty decimal.Decimal, lot *entity.Lot) actaLine {
	l := actaLine{quantity: qty}
	if lot == nil {
		return l
	}
	l.lot = lot.Number
	l.expiry = lot.ExpiryDate.Format("02/01/2006")
	if lot.Product != nil {
		l.code = lot.Product.Code
		l.product = lot.Product.Name
	}
	return l
}

func registrar(s *entity.UserSummary) string {
	if s == nil {
		return ""
	}
	name := strings.TrimSpace(s.Nombre + " " + s.Apellido)
	if name == "" {
		return s.Username
	}
	return name
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatQuantity inserta puntos de miles en la parte entera y conserva los decimales con coma.
// Ej: 25000 → "25.000", 1234.5 → "1.234,5"
func formatQuantity(d decimal.Decimal) string {
	s := d.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := sign + string(buf)
	if frac != "" {
		out += "," + frac
	}
	return out
}
