package model

import (
	"time"

	"github.com/shopdash/shopdash/lib/common/compare"
)

// Order is one placed order. Status is passed through from the source
// data without validation; the vocabulary is whatever the dataset uses
// ("delivered", "shipped", "canceled", ...).
type Order struct {
	ID        string
	Status    string
	Purchased time.Time
}

// CompareOrders orders by purchase timestamp, then by ID.
func CompareOrders(o1, o2 Order) compare.Order {
	return compare.Combine(
		func(a, b Order) compare.Order { return compare.Time(a.Purchased, b.Purchased) },
		func(a, b Order) compare.Order { return compare.Ordered(a.ID, b.ID) },
	)(o1, o2)
}
