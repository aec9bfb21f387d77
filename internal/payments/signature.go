package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	// ErrMissingFields means the checkout never handed us a complete payment
	// proof. Reported before any signature work, never as "invalid signature".
	ErrMissingFields    = errors.New("missing payment fields")
	ErrInvalidSignature = errors.New("invalid payment signature")
)

// Verifier checks Razorpay checkout signatures against the key secret.
type Verifier struct {
	secret string
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Verify recomputes HMAC-SHA256(secret, orderID+"|"+paymentID) and compares
// it to the signature in constant time.
func (v *Verifier) Verify(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return ErrMissingFields
	}

	expected := hmac256Hex(v.secret, orderID+"|"+paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}

	return nil
}

func hmac256Hex(key, body string) string {
	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(body))
	return hex.EncodeToString(h.Sum(nil))
}
