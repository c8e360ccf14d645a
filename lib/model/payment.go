package model

import (
	"github.com/shopspring/decimal"
)

// Payment is one payment against an order. Several payments may
// reference the same order.
type Payment struct {
	OrderID      string
	Type         string
	Installments int
	Value        decimal.Decimal
}
