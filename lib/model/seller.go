package model

// Seller is a registered seller with its location.
type Seller struct {
	ID    string
	City  string
	State string
}
