package helpers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RedirectWithMessage(rec, httptest.NewRequest(http.MethodPost, "/admin/products/add", nil), "/admin/products", "success", "تم الحفظ")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/admin/products", loc.Path)
	assert.Equal(t, "success", loc.Query().Get("status"))
	assert.Equal(t, "تم الحفظ", loc.Query().Get("message"))

	rec = httptest.NewRecorder()
	RedirectWithMessage(rec, httptest.NewRequest(http.MethodPost, "/", nil), "/admin/orders?filter=pending", "error", "x")
	assert.Equal(t, "/admin/orders?filter=pending&status=error&message=x", rec.Header().Get("Location"))
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal(" 1,250.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1250.5")))

	d, err = ParseDecimal("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDecimal("abc")
	assert.Error(t, err)
}

func TestFormParsers(t *testing.T) {
	assert.Equal(t, 7, ParseInt(" 7 ", 0))
	assert.Equal(t, 3, ParseInt("x", 3))

	for _, v := range []string{"on", "true", "1", "YES"} {
		assert.True(t, ParseCheckbox(v), v)
	}
	assert.False(t, ParseCheckbox(""))
	assert.False(t, ParseCheckbox("off"))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.5:4321"
	assert.Equal(t, "10.0.0.5", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", ClientIP(r))
}

func TestFirstValidationMessageFollowsFieldOrder(t *testing.T) {
	type form struct {
		Name    string `validate:"required"`
		Email   string `validate:"omitempty,email"`
		Message string `validate:"required"`
	}
	err := validator.New().Struct(form{Email: "not-an-email"})
	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 3)

	for i := 0; i < 20; i++ {
		assert.Equal(t, "الاسم مطلوب.", FirstValidationMessage(verrs))
	}
	assert.Empty(t, FirstValidationMessage(nil))
}
