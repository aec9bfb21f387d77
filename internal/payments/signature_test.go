package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerify(t *testing.T) {
	t.Parallel()

	const (
		secret    = "test-key-secret"
		orderID   = "order_Nxq7e2FAkCrWhC"
		paymentID = "pay_Nxq8BhG1xLgGJQ"
	)

	verifier := NewVerifier(secret)
	validSig := sign(secret, orderID, paymentID)

	require.NoError(t, verifier.Verify(orderID, paymentID, validSig))

	testCases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		wantErr   error
	}{
		{
			name:      "mutated signature",
			orderID:   orderID,
			paymentID: paymentID,
			signature: "0" + validSig[1:],
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "mutated order id",
			orderID:   orderID + "x",
			paymentID: paymentID,
			signature: validSig,
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "mutated payment id",
			orderID:   orderID,
			paymentID: paymentID + "x",
			signature: validSig,
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "signature for another secret",
			orderID:   orderID,
			paymentID: paymentID,
			signature: sign("other-secret", orderID, paymentID),
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "empty order id",
			orderID:   "",
			paymentID: paymentID,
			signature: validSig,
			wantErr:   ErrMissingFields,
		},
		{
			name:      "empty payment id",
			orderID:   orderID,
			paymentID: "",
			signature: validSig,
			wantErr:   ErrMissingFields,
		},
		{
			name:      "empty signature",
			orderID:   orderID,
			paymentID: paymentID,
			signature: "",
			wantErr:   ErrMissingFields,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := verifier.Verify(tc.orderID, tc.paymentID, tc.signature)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestVerifyMissingNotConflatedWithInvalid(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier("secret")

	err := verifier.Verify("", "", "")
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.NotErrorIs(t, err, ErrInvalidSignature)
}
