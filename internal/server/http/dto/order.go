package dto

// CreateOrderRequest is the JSON or form body accepted by the create order endpoint.
type CreateOrderRequest struct {
	Amount   int64             `form:"amount" json:"amount"`
	Currency string            `form:"currency" json:"currency"`
	Receipt  string            `form:"receipt" json:"receipt"`
	Notes    map[string]string `form:"notes" json:"notes"`
}

// CreateOrderResponse describes a freshly created processor order.
type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyRequest identifies the order to verify. Both spellings are accepted.
type VerifyRequest struct {
	OrderID      string `form:"order_id" json:"order_id"`
	OrderIDCamel string `form:"orderId" json:"orderId"`
}

// ID returns the snake case field, falling back to the camel case one.
func (r VerifyRequest) ID() string {
	if r.OrderID != "" {
		return r.OrderID
	}
	return r.OrderIDCamel
}

// VerifyResponse reports the payment state of an order.
type VerifyResponse struct {
	Paid      bool    `json:"paid"`
	PaymentID *string `json:"payment_id"`
	Amount    int64   `json:"amount"`
	Currency  string  `json:"currency"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
