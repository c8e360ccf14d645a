package summary

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/shopdash/shopdash/lib/common/date"
	"github.com/shopdash/shopdash/lib/model"
)

func TestStatusDistribution(t *testing.T) {
	orders := []model.Order{
		{ID: "o1", Status: "delivered"},
		{ID: "o2", Status: "delivered"},
		{ID: "o3", Status: "shipped"},
	}
	want := &Summary{
		Columns: [2]string{ColStatus, ColCount},
		Rows: []Row{
			{Key: "delivered", Count: 2},
			{Key: "shipped", Count: 1},
		},
	}
	if diff := cmp.Diff(want, StatusDistribution(orders)); diff != "" {
		t.Errorf("StatusDistribution() mismatch (-want +got):\n%s", diff)
	}
}

func TestTieBreakIsFirstSeen(t *testing.T) {
	orders := []model.Order{
		{Status: "shipped"},
		{Status: "delivered"},
		{Status: "canceled"},
		{Status: "delivered"},
	}
	want := []Row{
		{Key: "delivered", Count: 2},
		{Key: "shipped", Count: 1},
		{Key: "canceled", Count: 1},
	}
	if diff := cmp.Diff(want, StatusDistribution(orders).Rows); diff != "" {
		t.Errorf("StatusDistribution() mismatch (-want +got):\n%s", diff)
	}
}

func TestTopCategories(t *testing.T) {
	var products []model.Product
	for i := 0; i < 12; i++ {
		category := fmt.Sprintf("category%02d", i)
		for j := 0; j <= i; j++ {
			products = append(products, model.Product{Category: category})
		}
	}
	got := TopCategories(products)
	if len(got.Rows) != TopN {
		t.Fatalf("len(Rows) = %d, want %d", len(got.Rows), TopN)
	}
	if got.Rows[0].Key != "category11" || got.Rows[0].Count != 12 {
		t.Errorf("Rows[0] = %v, want category11 with count 12", got.Rows[0])
	}
	for i := 1; i < len(got.Rows); i++ {
		if got.Rows[i].Count > got.Rows[i-1].Count {
			t.Errorf("Rows not sorted by count descending at %d: %v", i, got.Rows)
		}
	}
}

func TestTopCategoriesSkipsEmpty(t *testing.T) {
	products := []model.Product{
		{Category: "books"},
		{Category: ""},
	}
	want := []Row{{Key: "books", Count: 1}}
	if diff := cmp.Diff(want, TopCategories(products).Rows); diff != "" {
		t.Errorf("TopCategories() mismatch (-want +got):\n%s", diff)
	}
}

func TestPaymentTypeDistribution(t *testing.T) {
	payments := []model.Payment{
		{Type: "credit_card"},
		{Type: "voucher"},
		{Type: "credit_card"},
		{Type: "boleto"},
	}
	want := []Row{
		{Key: "credit_card", Count: 2},
		{Key: "voucher", Count: 1},
		{Key: "boleto", Count: 1},
	}
	if diff := cmp.Diff(want, PaymentTypeDistribution(payments).Rows); diff != "" {
		t.Errorf("PaymentTypeDistribution() mismatch (-want +got):\n%s", diff)
	}
}

func TestSellersByState(t *testing.T) {
	sellers := []model.Seller{
		{ID: "s1", State: "SP", City: "sao paulo"},
		{ID: "s2", State: "SP", City: "campinas"},
		{ID: "s3", State: "MG", City: "belo horizonte"},
	}
	want := []Row{
		{Key: "SP", Count: 2},
		{Key: "MG", Count: 1},
	}
	if diff := cmp.Diff(want, SellersByState(sellers).Rows); diff != "" {
		t.Errorf("SellersByState() mismatch (-want +got):\n%s", diff)
	}
	if got := SellersByCity(sellers); len(got.Rows) != 3 {
		t.Errorf("SellersByCity() has %d rows, want 3", len(got.Rows))
	}
}

func TestOrdersPerDay(t *testing.T) {
	orders := []model.Order{
		{Purchased: time.Date(2017, 10, 4, 8, 0, 0, 0, time.UTC)},
		{Purchased: time.Date(2017, 10, 2, 10, 56, 33, 0, time.UTC)},
		{Purchased: time.Date(2017, 10, 2, 19, 55, 0, 0, time.UTC)},
	}
	want := &Summary{
		Columns: [2]string{ColDate, ColCount},
		Rows: []Row{
			{Key: "2017-10-02", Count: 2},
			{Key: "2017-10-04", Count: 1},
		},
	}
	if diff := cmp.Diff(want, OrdersPerDay(orders)); diff != "" {
		t.Errorf("OrdersPerDay() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrdersPerMonth(t *testing.T) {
	orders := []model.Order{
		{Purchased: time.Date(2017, 10, 4, 8, 0, 0, 0, time.UTC)},
		{Purchased: time.Date(2017, 10, 20, 10, 0, 0, 0, time.UTC)},
		{Purchased: time.Date(2017, 11, 1, 0, 0, 0, 0, time.UTC)},
	}
	want := []Row{
		{Key: "2017-10-01", Count: 2},
		{Key: "2017-11-01", Count: 1},
	}
	if diff := cmp.Diff(want, OrdersPerInterval(orders, date.Monthly).Rows); diff != "" {
		t.Errorf("OrdersPerInterval() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyInputs(t *testing.T) {
	var tests = []struct {
		summary *Summary
		key     string
	}{
		{StatusDistribution(nil), ColStatus},
		{TopCategories(nil), ColCategory},
		{PaymentTypeDistribution(nil), ColPaymentType},
		{SellersByState(nil), ColState},
		{SellersByCity(nil), ColCity},
		{OrdersPerDay(nil), ColDate},
	}
	for _, test := range tests {
		if test.summary.Rows == nil {
			t.Errorf("%s: Rows is nil, want empty slice", test.key)
		}
		if !test.summary.Empty() {
			t.Errorf("%s: Empty() = false, want true", test.key)
		}
		want := [2]string{test.key, ColCount}
		if test.summary.Columns != want {
			t.Errorf("Columns = %v, want %v", test.summary.Columns, want)
		}
	}
}

func TestRowCountBoundedByDistinctValues(t *testing.T) {
	orders := []model.Order{
		{Status: "delivered"}, {Status: "delivered"}, {Status: "delivered"},
		{Status: "shipped"}, {Status: "shipped"},
	}
	if got := StatusDistribution(orders); len(got.Rows) > 2 {
		t.Errorf("len(Rows) = %d, want at most 2", len(got.Rows))
	}
}
