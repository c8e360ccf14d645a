// Package metrics computes the headline numbers shown above the
// charts.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/shopdash/shopdash/lib/common/dict"
	"github.com/shopdash/shopdash/lib/filter"
	"github.com/shopdash/shopdash/lib/model"
)

// Metrics are scalar summary statistics over a filtered view. All
// averages are zero with HasPayments false when the payments view is
// empty; there is no division in that case.
type Metrics struct {
	Orders   int `json:"orders"`
	Products int `json:"products"`
	Sellers  int `json:"sellers"`

	TotalPayments       decimal.Decimal `json:"total_payments"`
	AveragePayment      decimal.Decimal `json:"average_payment"`
	AverageInstallments decimal.Decimal `json:"average_installments"`
	AverageOrderValue   decimal.Decimal `json:"average_order_value"`
	HasPayments         bool            `json:"has_payments"`
}

// Compute derives the metrics from a filtered view. Sellers are never
// filtered in this system and are passed from the snapshot.
func Compute(v *filter.View, sellers []model.Seller) Metrics {
	m := Metrics{
		Orders:   len(v.Orders),
		Products: len(v.Products),
		Sellers:  len(sellers),
	}
	if len(v.Payments) == 0 {
		return m
	}
	m.HasPayments = true
	var installments decimal.Decimal
	perOrder := make(map[string]decimal.Decimal)
	for _, p := range v.Payments {
		m.TotalPayments = m.TotalPayments.Add(p.Value)
		installments = installments.Add(decimal.NewFromInt(int64(p.Installments)))
		perOrder[p.OrderID] = perOrder[p.OrderID].Add(p.Value)
	}
	n := decimal.NewFromInt(int64(len(v.Payments)))
	m.AveragePayment = m.TotalPayments.Div(n).Round(2)
	m.AverageInstallments = installments.Div(n).Round(2)

	// Group by order first, then average across orders.
	var orderTotal decimal.Decimal
	for _, id := range dict.Keys(perOrder) {
		orderTotal = orderTotal.Add(perOrder[id])
	}
	m.AverageOrderValue = orderTotal.Div(decimal.NewFromInt(int64(len(perOrder)))).Round(2)
	return m
}
