package dto

// CallbackRequest is what the hosted checkout posts after a payment attempt.
type CallbackRequest struct {
	OrderID   string `form:"razorpay_order_id" json:"razorpay_order_id"`
	PaymentID string `form:"razorpay_payment_id" json:"razorpay_payment_id"`
	Signature string `form:"razorpay_signature" json:"razorpay_signature"`
}
