package model

// Product is a listed product. Category may be empty in the source
// data.
type Product struct {
	ID       string
	Category string
}
