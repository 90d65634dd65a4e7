package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrInvalidSignature = errors.New("invalid callback signature")

// SignatureVerifier validates checkout callback signatures, computed as
// hex(HMAC-SHA256(order_id + "|" + payment_id, key_secret)).
type SignatureVerifier struct {
	secret []byte
}

// NewSignatureVerifier builds verifier with the processor key secret.
func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

// Sign returns the expected signature for the pair.
func (v *SignatureVerifier) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares signature in constant time.
func (v *SignatureVerifier) Verify(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return ErrInvalidSignature
	}
	if !hmac.Equal([]byte(v.Sign(orderID, paymentID)), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
