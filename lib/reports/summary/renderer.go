package summary

import (
	"github.com/shopdash/shopdash/lib/common/table"
)

// Renderer renders a summary as a table.
type Renderer struct{}

func (rn *Renderer) Render(s *Summary) *table.Table {
	tbl := table.New(1, 1)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText(s.Columns[0], table.Center).
		AddText(s.Columns[1], table.Center)
	tbl.AddSeparatorRow()
	for _, row := range s.Rows {
		tbl.AddRow().
			AddText(row.Key, table.Left).
			AddCount(row.Count)
	}
	tbl.AddSeparatorRow()
	return tbl
}
