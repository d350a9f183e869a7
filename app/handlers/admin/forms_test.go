package admin

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/admin", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestMovedSortOrder(t *testing.T) {
	assert.Equal(t, 4, MovedSortOrder(3, "down"))
	assert.Equal(t, 2, MovedSortOrder(3, "up"))
	assert.Equal(t, 0, MovedSortOrder(0, "up"))
}

func TestReadCategoryFormSlug(t *testing.T) {
	form := readCategoryForm(postRequest(url.Values{"name": {"  أشكال المباخر "}, "sort_order": {"2"}, "is_active": {"on"}}))
	assert.Equal(t, "اشكال-المباخر", form.Slug)
	assert.Equal(t, 2, form.SortOrder)
	assert.True(t, form.IsActive)

	form = readCategoryForm(postRequest(url.Values{"name": {"x"}, "slug": {"Clock Numbers!"}}))
	assert.Equal(t, "clock-numbers", form.Slug)
	assert.False(t, form.IsActive)
}

func TestProductFormApply(t *testing.T) {
	form := readProductForm(postRequest(url.Values{
		"name":        {"بصمة"},
		"price":       {"1,200.50"},
		"category_id": {"c1"},
		"is_active":   {"on"},
	}))

	var p models.Product
	require.Nil(t, form.apply(&p))
	assert.True(t, p.Price.Equal(decimal.RequireFromString("1200.5")))
	assert.Equal(t, models.DefaultPriceCurrency, p.PriceCurrency)
	assert.Equal(t, "c1", p.CategoryRef())
	assert.True(t, p.IsActive)

	form.CategoryID = ""
	require.Nil(t, form.apply(&p))
	assert.Nil(t, p.CategoryID)

	for _, price := range []string{"-5", "abc"} {
		form.Price = price
		errs := form.apply(&p)
		assert.Contains(t, errs, "price", price)
	}
}
