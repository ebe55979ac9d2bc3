package utils

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// BuildTransferReference returns the UPI payment instruction for amount. The
// payee id is embedded verbatim.
func BuildTransferReference(payeeID string, amount int64) string {
	return fmt.Sprintf("upi://pay?pa=%s&am=%d", payeeID, amount)
}

// RenderQRCode encodes text as a PNG QR code of size x size pixels.
func RenderQRCode(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

// QRCodeURL is the HTTP path serving the QR code for amount.
func QRCodeURL(path string, amount int64) string {
	return fmt.Sprintf("%s?amount=%d", path, amount)
}
