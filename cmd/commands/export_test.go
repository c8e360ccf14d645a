package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shopdash/shopdash/cmd/cmdtest"
)

func TestExport(t *testing.T) {
	dir := t.TempDir()

	cmdtest.Run(t, CreateExportCommand(), filepath.Join("testdata", "data"),
		"--quiet", "-o", dir)

	var tests = []struct {
		file string
		want string
	}{
		{
			file: "order_status.csv",
			want: "order_status,count\ndelivered,2\nshipped,1\ncanceled,1\n",
		},
		{
			file: "top_categories.csv",
			want: "product_category_name,count\nelectronics,2\nbooks,1\n",
		},
		{
			file: "payment_types.csv",
			want: "payment_type,count\ncredit_card,2\nvoucher,1\nboleto,1\n",
		},
		{
			file: "sellers_by_state.csv",
			want: "seller_state,count\nSP,2\nMG,1\n",
		},
		{
			file: "orders_per_day.csv",
			want: "order_date,count\n2017-10-02,2\n2017-10-04,1\n2017-11-18,1\n",
		},
	}
	for _, test := range tests {
		t.Run(test.file, func(t *testing.T) {
			got, err := os.ReadFile(filepath.Join(dir, test.file))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", test.file, diff)
			}
		})
	}
}

func TestExportWithConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "exports.yaml")
	if err := os.WriteFile(config, []byte(""+
		"- report: sellers_by_city\n"+
		"  file: cities.csv\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmdtest.Run(t, CreateExportCommand(), filepath.Join("testdata", "data"),
		"--quiet", "-o", dir, "-c", config)

	got, err := os.ReadFile(filepath.Join(dir, "cities.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := "seller_city,count\nsao paulo,1\ncampinas,1\nbelo horizonte,1\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("cities.csv mismatch (-want +got):\n%s", diff)
	}
}

func TestExportFiltered(t *testing.T) {
	dir := t.TempDir()

	cmdtest.Run(t, CreateExportCommand(), filepath.Join("testdata", "data"),
		"--quiet", "-o", dir, "--payment", "credit_card")

	got, err := os.ReadFile(filepath.Join(dir, "payment_types.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := "payment_type,count\ncredit_card,2\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("payment_types.csv mismatch (-want +got):\n%s", diff)
	}
}
