package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// RazorpaySignature computes the hex HMAC-SHA256 the gateway signs its
// payment callbacks with: HMAC(secret, orderID + "|" + paymentID).
func RazorpaySignature(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyRazorpaySignature checks a gateway callback signature in constant
// time. This is the sole integrity gate in front of paid-order creation.
func VerifyRazorpaySignature(secret, orderID, paymentID, signature string) bool {
	expected := RazorpaySignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
