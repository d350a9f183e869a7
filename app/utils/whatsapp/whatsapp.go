package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const baseURL = "https://wa.me/"

// Message is the inquiry text sent for a product.
func Message(name, description, price, currency string) string {
	return fmt.Sprintf("السلام عليكم، أريد الاستفسار عن هذا المنتج:\n\n%s\n%s\nالسعر: %s %s",
		name, description, price, currency)
}

// Link builds https://wa.me/<digits>?text=<message> with percent-encoded spaces.
func Link(phone, message string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return baseURL + Digits(phone) + "?text=" + escaped
}

// Digits drops everything but ASCII digits, so "+20 100-411" becomes "20100411".
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
