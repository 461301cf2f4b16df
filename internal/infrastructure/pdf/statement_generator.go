// Package pdf implementa la generación del estado de cuenta de un cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  ESTADO DE CUENTA + Fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Vencimiento | Tipo | Monto | Abonado | Saldo | Est. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES por moneda: original / abonado / SALDO PENDIENTE   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/cobranzas-pro/internal/application/collections"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa collections.StatementGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, data *collections.StatementData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta", true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(data.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range debtRows(data.Debts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(data.Totals) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(len(data.Payments)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + fecha de emisión (der).
func headerRow(data *collections.StatementData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(data.Company.Email, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente/deudor.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(customer.Email, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de deudas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Vencimiento", 2, align.Left),
		h("Tipo", 2, align.Left),
		h("Moneda", 1, align.Center),
		h("Monto", 2, align.Right),
		h("Abonado", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("Estado", 1, align.Center),
	)
}

// debtRows: una fila por deuda.
func debtRows(debts []*entity.Debt) []core.Row {
	result := make([]core.Row, 0, len(debts))
	for _, d := range debts {
		paid := d.Amount.Sub(d.Remaining)
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				d.DueDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(d.Description, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				d.Currency,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatAmount(d.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatAmount(paid),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatAmount(d.Remaining),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				statusLabel(d.Status),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// totalsRows: un bloque de totales por cada moneda presente.
func totalsRows(totals []collections.CurrencyTotal) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorRed, Right: 1,
		})
	}

	rows := make([]core.Row, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, row.New(22).Add(
			col.New(4),
			col.New(4).Add(
				label("Total "+t.Currency+":"),
				label("Abonado:"),
				text.New("SALDO PENDIENTE:", props.Text{
					Style: fontstyle.Bold, Size: 10, Align: align.Right,
					Color: colorRed, Right: 2,
				}),
			),
			col.New(4).Add(
				value(formatAmount(t.Original)),
				value(formatAmount(t.Paid)),
				grandValue(formatAmount(t.Remaining)),
			),
		))
	}
	return rows
}

// footerRow: leyenda con el número de pagos registrados.
func footerRow(paymentCount int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Documento informativo generado por el sistema de cobranza. Pagos registrados: %d.", paymentCount),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func statusLabel(status string) string {
	switch status {
	case entity.DebtStatusActive:
		return "Activa"
	case entity.DebtStatusPaid:
		return "Pagada"
	case entity.DebtStatusCanceled:
		return "Anulada"
	}
	return status
}

// formatAmount formatea un decimal con puntos de miles y coma decimal.
// Ej: 1250.5 → "1.250,50"
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	negative := false
	if len(intPart) > 0 && intPart[0] == '-' {
		negative = true
		intPart = intPart[1:]
	}

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf) + "," + decPart
	if negative {
		out = "-" + out
	}
	return out
}
