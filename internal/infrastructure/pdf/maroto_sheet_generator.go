// Package pdf renders the printable repair order sheet.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Shop name  │  RO number + date + status            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOMER: name + contact                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Description | Part | Unit Price | Amount      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Tax / TOTAL  (+ PAID stamp)             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/rvaldez/repairshop-pro/internal/application/orders"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPaid    = &props.Color{Red: 0, Green: 128, Blue: 0}
)

// MarotoSheetGenerator implements orders.SheetGenerator using Maroto v2.
type MarotoSheetGenerator struct{}

// NewMarotoSheetGenerator builds the generator.
func NewMarotoSheetGenerator() *MarotoSheetGenerator { return &MarotoSheetGenerator{} }

// Generate renders the sheet and returns its bytes.
func (g *MarotoSheetGenerator) Generate(data orders.SheetData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Repair Order "+data.Order.RepairOrderNumber, true).
		WithAuthor(data.ShopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Order, data.ShopName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(data.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: shop name (left), RO number + date + status (right).
func headerRow(order *entity.Order, shopName string) core.Row {
	date := order.CreatedAt.Format("01/02/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Repair Order Sheet", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(order.RepairOrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Status: "+order.Status, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// customerRow: customer name and contact details.
func customerRow(customer *entity.Customer) core.Row {
	name, contact := "—", "—"
	if customer != nil {
		name = customer.Name
		contact = fmt.Sprintf("Email: %s   |   Phone: %s   |   Address: %s",
			nonEmpty(customer.Email, "—"),
			nonEmpty(customer.Phone, "—"),
			nonEmpty(customer.Address, "—"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: work/parts table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 5, align.Left),
		h("Part", 2, align.Left),
		h("Unit Price", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

// tableLineRows: one row per order line.
func tableLineRows(lines []orders.SheetLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.PartName, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned totals block with an optional PAID stamp.
func totalsRow(data orders.SheetData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	left := col.New(3)
	if data.Order.Paid {
		left = col.New(3).Add(text.New("PAID", props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPaid, Top: 6,
		}))
	}

	return row.New(26).Add(
		left,
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Tax:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+data.SubTotal.StringFixed(2)),
			value("$"+data.Tax.StringFixed(2)),
			grandValue("$"+data.Total.StringFixed(2)),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
