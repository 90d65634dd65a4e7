package model

// PaymentStatus describes a payment attempt state reported by the processor.
type PaymentStatus string

const (
	PaymentStatusCreated    PaymentStatus = "created"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// Payment is a single attempt to settle an order.
type Payment struct {
	ID       string
	OrderID  string
	Status   PaymentStatus
	Amount   int64
	Currency string
	Method   string
}

// Captured reports whether funds were collected by this attempt.
func (p Payment) Captured() bool {
	return p.Status == PaymentStatusCaptured
}

// FirstCaptured returns the first captured attempt in listing order.
func FirstCaptured(payments []Payment) (Payment, bool) {
	for _, p := range payments {
		if p.Captured() {
			return p, true
		}
	}
	return Payment{}, false
}
