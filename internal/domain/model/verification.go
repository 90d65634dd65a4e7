package model

// Verification is the settlement decision for an order.
type Verification struct {
	OrderID   string
	Paid      bool
	PaymentID *string
	Amount    int64
	Currency  string
}
