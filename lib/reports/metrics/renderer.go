package metrics

import (
	"github.com/shopdash/shopdash/lib/common/table"
)

// Renderer renders the metrics as a table.
type Renderer struct{}

func (rn *Renderer) Render(m Metrics) *table.Table {
	tbl := table.New(1, 1)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("Metric", table.Center).
		AddText("Value", table.Center)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText("Total Orders", table.Left).AddCount(m.Orders)
	tbl.AddRow().AddText("Total Products", table.Left).AddCount(m.Products)
	tbl.AddRow().AddText("Total Sellers", table.Left).AddCount(m.Sellers)
	if m.HasPayments {
		tbl.AddRow().AddText("Total Payments", table.Left).AddNumber(m.TotalPayments)
		tbl.AddRow().AddText("Average Payment", table.Left).AddNumber(m.AveragePayment)
		tbl.AddRow().AddText("Average Order Value", table.Left).AddNumber(m.AverageOrderValue)
		tbl.AddRow().AddText("Average Installments", table.Left).AddNumber(m.AverageInstallments)
	} else {
		tbl.AddRow().AddText("Total Payments", table.Left).AddText("N/A", table.Right)
	}
	tbl.AddSeparatorRow()
	return tbl
}
