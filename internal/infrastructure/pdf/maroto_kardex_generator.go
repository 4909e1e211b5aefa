// Package pdf genera el kardex de un material en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SKU + nombre del material │  Unidad + fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Origen | Ref | Cant | C.Unit | Saldo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Entradas / Salidas / Saldo valorizado              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/apetitox-inventario/internal/application/inventory"
	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
)

var _ inventory.KardexPDFGenerator = (*MarotoKardexGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorOut     = &props.Color{Red: 160, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoKardexGenerator implementa inventory.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct {
	now func() time.Time
}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator {
	return &MarotoKardexGenerator{now: time.Now}
}

// KardexLine es una fila del reporte con el saldo acumulado hasta ese movimiento.
type KardexLine struct {
	Entry        entity.KardexEntry
	Balance      decimal.Decimal
	BalanceValue decimal.Decimal
}

// RunningBalance acumula cantidades y valores (cantidad × costo) del periodo.
// El saldo parte de cero: con filtro desde, refleja solo los movimientos listados.
func RunningBalance(entries []entity.KardexEntry) []KardexLine {
	lines := make([]KardexLine, 0, len(entries))
	balance, value := decimal.Zero, decimal.Zero
	for _, e := range entries {
		amount := e.Quantity.Mul(e.UnitCost)
		if e.Type == entity.MovementTypeOUT {
			balance = balance.Sub(e.Quantity)
			value = value.Sub(amount)
		} else {
			balance = balance.Add(e.Quantity)
			value = value.Add(amount)
		}
		lines = append(lines, KardexLine{Entry: e, Balance: balance, BalanceValue: value})
	}
	return lines
}

// GenerateKardexPDF genera el PDF y devuelve sus bytes. material puede ser nil.
func (g *MarotoKardexGenerator) GenerateKardexPDF(
	_ context.Context,
	sku string,
	material *entity.Material,
	entries []entity.KardexEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex "+sku, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sku, material, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	lines := RunningBalance(entries)
	if len(lines) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin movimientos para el periodo consultado", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range tableDetailRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(lines))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(sku string, material *entity.Material, now time.Time) core.Row {
	name, unit := "Material no registrado", "—"
	if material != nil {
		name = nonEmpty(material.Name, sku)
		unit = nonEmpty(material.Unit, "—")
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New("KARDEX "+sku, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Unidad: "+unit, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Origen", 2, align.Left),
		h("Referencia", 2, align.Left),
		h("Cantidad", 1, align.Right),
		h("Costo Unit.", 1, align.Right),
		h("Saldo", 1, align.Right),
		h("Saldo $", 2, align.Right),
	)
}

func tableDetailRows(lines []KardexLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		e := l.Entry
		qtyColor := colorGray
		if e.Type == entity.MovementTypeOUT {
			qtyColor = colorOut
		}
		ref := "—"
		if e.Reference != nil && *e.Reference != "" {
			ref = *e.Reference
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(e.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(1).Add(text.New(e.Type,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: qtyColor})),
			col.New(2).Add(text.New(e.Origin,
				props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(ref,
				props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(formatQty(e.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: qtyColor})),
			col.New(1).Add(text.New("$"+formatMoney(e.UnitCost),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(formatQty(l.Balance),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+formatMoney(l.BalanceValue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(lines []KardexLine) core.Row {
	in, out := decimal.Zero, decimal.Zero
	for _, l := range lines {
		if l.Entry.Type == entity.MovementTypeOUT {
			out = out.Add(l.Entry.Quantity)
		} else {
			in = in.Add(l.Entry.Quantity)
		}
	}
	balance, value := decimal.Zero, decimal.Zero
	if n := len(lines); n > 0 {
		balance, value = lines[n-1].Balance, lines[n-1].BalanceValue
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	val := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Entradas:"),
			label("Salidas:"),
			label("Saldo del periodo:"),
			label("Saldo valorizado:"),
		),
		col.New(3).Add(
			val(formatQty(in)),
			val(formatQty(out)),
			val(formatQty(balance)),
			text.New("$"+formatMoney(value), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatQty muestra la cantidad sin ceros decimales sobrantes.
func formatQty(d decimal.Decimal) string {
	return d.String()
}

// formatMoney redondea a 2 decimales e inserta puntos de miles.
// Ej: 25000 → "25.000,00", -1234.5 → "-1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
