package model

import "time"

// ValidityWindow is how long after creation an order's payment is still recognised.
const ValidityWindow = 2 * time.Hour

// Order describes a payment order issued by the processor.
type Order struct {
	ID        string
	Amount    int64
	Currency  string
	Receipt   string
	Notes     map[string]string
	Status    string
	CreatedAt time.Time
}

// ExpiredAt reports whether the validity window has elapsed at now.
// Orders without a creation timestamp never expire.
func (o Order) ExpiredAt(now time.Time) bool {
	if o.CreatedAt.IsZero() {
		return false
	}
	return now.Sub(o.CreatedAt) > ValidityWindow
}

// CreateOrderRequest carries caller supplied order parameters.
type CreateOrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}
