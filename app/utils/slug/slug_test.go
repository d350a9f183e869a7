package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin", "Wooden Stamps", "wooden-stamps"},
		{"alef madda", "آية الكرسي", "ايه-الكرسي"},
		{"alef hamza above and below", "أدوات إسلامية", "ادوات-اسلاميه"},
		{"alef maksura", "هدى", "هدي"},
		{"taa marbuta", "مبخرة", "مبخره"},
		{"collapses whitespace", "بصمة   خشبية", "بصمه-خشبيه"},
		{"strips punctuation", "ساعات! (حائط)", "ساعات-حائط"},
		{"strips diacritics", "مَبْخَرَة", "مبخره"},
		{"digits kept", "Gift Box 2", "gift-box-2"},
		{"trims edges", "  هدايا  ", "هدايا"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.in))
		})
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	inputs := []string{
		"آية الكرسي", "بصمات خشبية", "Wooden   Stamps!!", "مَبْخَرَة تراثية", "  - a - b -  ",
		"ساعة حائط ١٢", "Ⅻ ﬁne", "إهداء — خاص", "ق_ق", "",
	}
	for _, in := range inputs {
		once := Generate(in)
		assert.Equal(t, once, Generate(once), "input %q", in)
	}
}

func TestGenerateIsURLSafe(t *testing.T) {
	for _, in := range []string{"آية / الكرسي?", "a&b=c", "<script>", "مكتبة#1"} {
		out := Generate(in)
		assert.NotContains(t, out, " ")
		for _, bad := range []string{"/", "?", "&", "=", "#", "<", ">"} {
			assert.False(t, strings.Contains(out, bad), "%q contains %q", out, bad)
		}
		assert.NotContains(t, out, "آ")
	}
}
