// Package summary computes the small two-column aggregate tables the
// dashboard charts are built from.
package summary

import (
	"time"

	"github.com/shopdash/shopdash/lib/common/compare"
	"github.com/shopdash/shopdash/lib/common/date"
	"github.com/shopdash/shopdash/lib/common/dict"
	"github.com/shopdash/shopdash/lib/model"
)

// Column names of the summary tables. They are part of the contract
// with the presentation layer and never change with the input.
const (
	ColStatus      = "order_status"
	ColCategory    = "product_category_name"
	ColPaymentType = "payment_type"
	ColState       = "seller_state"
	ColCity        = "seller_city"
	ColDate        = "order_date"
	ColCount       = "count"
)

// TopN restricts the categorical rankings.
const TopN = 10

// Summary is a two-column aggregate table, one row per distinct key.
// Rows is never nil, so an empty summary still carries its headers.
type Summary struct {
	Columns [2]string `json:"columns"`
	Rows    []Row     `json:"rows"`
}

// Row is one key with its count.
type Row struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

func newSummary(key string) *Summary {
	return &Summary{
		Columns: [2]string{key, ColCount},
		Rows:    make([]Row, 0),
	}
}

// Empty reports whether the summary has no rows. Callers render a
// "no data" notice instead of a chart in that case.
func (s *Summary) Empty() bool {
	return len(s.Rows) == 0
}

// Top returns a summary restricted to the first n rows.
func (s *Summary) Top(n int) *Summary {
	if len(s.Rows) <= n {
		return s
	}
	res := newSummary(s.Columns[0])
	res.Rows = append(res.Rows, s.Rows[:n]...)
	return res
}

// StatusDistribution counts orders per status, most frequent first.
// Ties keep the order in which a status first appears in the input.
func StatusDistribution(orders []model.Order) *Summary {
	return countBy(newSummary(ColStatus), orders, func(o model.Order) string {
		return o.Status
	})
}

// TopCategories counts products per category and keeps the ten most
// frequent. Products without a category are skipped.
func TopCategories(products []model.Product) *Summary {
	return countBy(newSummary(ColCategory), products, func(p model.Product) string {
		return p.Category
	}).Top(TopN)
}

// PaymentTypeDistribution counts payments per payment type.
func PaymentTypeDistribution(payments []model.Payment) *Summary {
	return countBy(newSummary(ColPaymentType), payments, func(p model.Payment) string {
		return p.Type
	})
}

// SellersByState counts sellers per state.
func SellersByState(sellers []model.Seller) *Summary {
	return countBy(newSummary(ColState), sellers, func(s model.Seller) string {
		return s.State
	})
}

// SellersByCity counts sellers per city.
func SellersByCity(sellers []model.Seller) *Summary {
	return countBy(newSummary(ColCity), sellers, func(s model.Seller) string {
		return s.City
	})
}

// OrdersPerDay counts orders per calendar date, in chronological
// order.
func OrdersPerDay(orders []model.Order) *Summary {
	return OrdersPerInterval(orders, date.Daily)
}

// OrdersPerInterval counts orders per calendar interval, keyed by the
// first date of each interval, in chronological order.
func OrdersPerInterval(orders []model.Order, interval date.Interval) *Summary {
	counts := make(map[time.Time]int)
	for _, o := range orders {
		counts[date.StartOf(o.Purchased, interval)]++
	}
	res := newSummary(ColDate)
	for _, d := range dict.SortedKeys(counts, compare.Time) {
		res.Rows = append(res.Rows, Row{Key: d.Format("2006-01-02"), Count: counts[d]})
	}
	return res
}

// countBy tallies ts per key, skipping empty keys, and sorts by count
// descending with first-seen keys winning ties.
func countBy[T any](res *Summary, ts []T, key func(T) string) *Summary {
	counts := make(map[string]int)
	for _, t := range ts {
		k := key(t)
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			res.Rows = append(res.Rows, Row{Key: k})
		}
		counts[k]++
	}
	for i := range res.Rows {
		res.Rows[i].Count = counts[res.Rows[i].Key]
	}
	compare.SortStable(res.Rows, func(r1, r2 Row) compare.Order {
		return compare.Ordered(r2.Count, r1.Count)
	})
	return res
}
