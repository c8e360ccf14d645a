package model

import (
	"github.com/shopspring/decimal"
)

// Item is one line item of an order, linking the order to a product
// and the seller who fulfills it.
type Item struct {
	OrderID   string
	ProductID string
	SellerID  string
	Price     decimal.Decimal
	Freight   decimal.Decimal
}
