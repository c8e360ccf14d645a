// Package filter turns a user-supplied filter specification into
// read-only views of the snapshot tables. Filtering never mutates the
// snapshot and is idempotent: applying the same spec twice yields the
// same view.
package filter

import (
	"github.com/shopdash/shopdash/lib/common/date"
	"github.com/shopdash/shopdash/lib/common/predicate"
	"github.com/shopdash/shopdash/lib/dataset"
	"github.com/shopdash/shopdash/lib/model"
)

// All is the sentinel meaning "no restriction on this dimension". The
// empty string is treated the same way.
const All = "All"

// Spec is a filter specification. The zero value filters nothing.
type Spec struct {
	Period      date.Period
	Category    string
	PaymentType string
}

// Normalize fills unset period bounds from the given span, typically
// the full span of the dataset. An inverted range is left alone; it
// simply matches no orders.
func (s Spec) Normalize(span date.Period) Spec {
	s.Period = s.Period.OrDefault(span)
	return s
}

// View is the result of applying a Spec to a snapshot. Sellers and
// items are not filtered in this system and stay on the snapshot.
type View struct {
	Spec     Spec
	Orders   []model.Order
	Products []model.Product
	Payments []model.Payment

	// Warnings are non-fatal notices about the spec, e.g. an
	// inverted date range.
	Warnings []string
}

// Apply filters the snapshot tables.
func (s Spec) Apply(db *dataset.Snapshot) *View {
	v := &View{
		Spec:     s,
		Orders:   s.FilterOrders(db.Orders),
		Products: s.FilterProducts(db.Products),
		Payments: s.FilterPayments(db.Payments),
	}
	if !s.Period.Start.IsZero() && s.Period.Empty() {
		v.Warnings = append(v.Warnings, "start date is after end date; no orders match")
	}
	return v
}

// FilterOrders keeps the orders purchased within the period, bounds
// inclusive. A zero period keeps everything.
func (s Spec) FilterOrders(orders []model.Order) []model.Order {
	return predicate.Keep(orders, s.orderPredicate())
}

// FilterProducts keeps the products matching the category exactly.
func (s Spec) FilterProducts(products []model.Product) []model.Product {
	return predicate.Keep(products, s.productPredicate())
}

// FilterPayments keeps the payments matching the payment type exactly.
func (s Spec) FilterPayments(payments []model.Payment) []model.Payment {
	return predicate.Keep(payments, s.paymentPredicate())
}

func (s Spec) orderPredicate() predicate.Predicate[model.Order] {
	if s.Period.Start.IsZero() && s.Period.End.IsZero() {
		return predicate.True[model.Order]
	}
	period := s.Period
	if period.Start.IsZero() || period.End.IsZero() {
		period = period.OrDefault(date.Period{
			Start: date.Date(1, 1, 1),
			End:   date.Date(9999, 12, 31),
		})
	}
	return func(o model.Order) bool {
		return period.Contains(date.Day(o.Purchased))
	}
}

func (s Spec) productPredicate() predicate.Predicate[model.Product] {
	if unrestricted(s.Category) {
		return predicate.True[model.Product]
	}
	return func(p model.Product) bool {
		return p.Category == s.Category
	}
}

func (s Spec) paymentPredicate() predicate.Predicate[model.Payment] {
	if unrestricted(s.PaymentType) {
		return predicate.True[model.Payment]
	}
	return func(p model.Payment) bool {
		return p.Type == s.PaymentType
	}
}

func unrestricted(v string) bool {
	return v == "" || v == All
}
