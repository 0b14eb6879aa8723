package paymentprovider

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// PaymentSignature возвращает подпись, которую Razorpay передаёт в
// обработчик успешной оплаты: hex(HMAC-SHA256(order_id|payment_id)).
func PaymentSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature сравнивает подпись за постоянное время.
func VerifyPaymentSignature(secret, orderID, paymentID, signature string) bool {
	if signature == "" {
		return false
	}
	expected := PaymentSignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
