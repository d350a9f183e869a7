package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkEncodesMessage(t *testing.T) {
	msg := Message("بصمة خشبية", "بصمة بآية الكرسي", "120", "ج.م")
	link := Link("+20 100 411 9595", msg)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/201004119595?text="))
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+")

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Equal(t, msg, text)
	assert.Contains(t, text, "بصمة خشبية")
	assert.Contains(t, text, "120 ج.م")
}

func TestMessageLayout(t *testing.T) {
	msg := Message("n", "d", "1", "c")
	assert.Equal(t, "السلام عليكم، أريد الاستفسار عن هذا المنتج:\n\nn\nd\nالسعر: 1 c", msg)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "201004119595", Digits("+20 (100) 411-9595"))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "", Digits("١٢٣"))
}
