package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func testTable() *Table {
	tbl := New(1, 1)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText("key", Center).AddText("value", Center)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText("total", Left).AddNumber(decimal.RequireFromString("1234.5"))
	tbl.AddRow().AddText("count", Left).AddCount(7)
	tbl.AddSeparatorRow()
	return tbl
}

func TestTextRenderer(t *testing.T) {
	renderer := TextRenderer{Round: 2}
	var got strings.Builder

	if err := renderer.Render(testTable(), &got); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"+-------+----------+",
		"|  key  |  value   |",
		"+-------+----------+",
		"| total | 1,234.50 |",
		"| count |        7 |",
		"+-------+----------+",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestTextRendererThousands(t *testing.T) {
	renderer := TextRenderer{Round: 1, Thousands: true}
	var got strings.Builder

	tbl := New(1)
	tbl.AddRow().AddNumber(decimal.RequireFromString("1234.5"))
	if err := renderer.Render(tbl, &got); err != nil {
		t.Fatal(err)
	}

	want := "| 1.2 |\n\n"
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVRenderer(t *testing.T) {
	renderer := CSVRenderer{}
	var got strings.Builder

	if err := renderer.Render(testTable(), &got); err != nil {
		t.Fatal(err)
	}

	// Separator rows are dropped in the CSV output.
	want := "key,value\ntotal,1234.5\ncount,7\n"
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddThousandsSep(t *testing.T) {
	var tests = []struct {
		input string
		want  string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"1234567.89", "1,234,567.89"},
		{"-1234", "-1,234"},
	}
	for _, test := range tests {
		if got := addThousandsSep(test.input); got != test.want {
			t.Errorf("addThousandsSep(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}
