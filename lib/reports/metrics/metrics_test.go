package metrics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shopdash/shopdash/lib/filter"
	"github.com/shopdash/shopdash/lib/model"
)

func TestCompute(t *testing.T) {
	view := &filter.View{
		Orders: []model.Order{{ID: "o1"}, {ID: "o2"}},
		Products: []model.Product{
			{ID: "p1", Category: "electronics"},
		},
		Payments: []model.Payment{
			{OrderID: "o1", Value: decimal.RequireFromString("50.0"), Installments: 2},
			{OrderID: "o1", Value: decimal.RequireFromString("25.0"), Installments: 1},
			{OrderID: "o2", Value: decimal.RequireFromString("10.0"), Installments: 3},
		},
	}
	sellers := []model.Seller{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}

	m := Compute(view, sellers)

	if m.Orders != 2 || m.Products != 1 || m.Sellers != 3 {
		t.Errorf("counts = %d/%d/%d, want 2/1/3", m.Orders, m.Products, m.Sellers)
	}
	if !m.HasPayments {
		t.Error("HasPayments = false, want true")
	}
	assertDecimal(t, "TotalPayments", m.TotalPayments, "85")
	assertDecimal(t, "AveragePayment", m.AveragePayment, "28.33")
	// Payments are first summed per order (75 and 10), then averaged
	// across the two orders.
	assertDecimal(t, "AverageOrderValue", m.AverageOrderValue, "42.5")
	assertDecimal(t, "AverageInstallments", m.AverageInstallments, "2")
}

func TestComputeEmptyPayments(t *testing.T) {
	view := &filter.View{
		Orders: []model.Order{{ID: "o1"}},
	}
	m := Compute(view, nil)
	if m.HasPayments {
		t.Error("HasPayments = true, want false")
	}
	assertDecimal(t, "TotalPayments", m.TotalPayments, "0")
	assertDecimal(t, "AveragePayment", m.AveragePayment, "0")
	assertDecimal(t, "AverageInstallments", m.AverageInstallments, "0")
	assertDecimal(t, "AverageOrderValue", m.AverageOrderValue, "0")
	if m.Orders != 1 || m.Sellers != 0 {
		t.Errorf("counts = %d/%d, want 1/0", m.Orders, m.Sellers)
	}
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
