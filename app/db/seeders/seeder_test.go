package seeders

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-catalog/app/db/testdb"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	assert.Len(t, catalog.Categories, 6)
	assert.NotEmpty(t, catalog.Products)
	assert.Equal(t, "201004119595", catalog.Settings["contact_whatsapp"])

	slugs := map[string]bool{}
	for _, c := range catalog.Categories {
		slugs[c.Slug] = true
	}
	for _, p := range catalog.Products {
		assert.True(t, slugs[p.Category], "product %q points at unknown category %q", p.Name, p.Category)
	}
}

func TestDBSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)

	require.NoError(t, DBSeed(ctx, db))

	count := func(model interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	categories, products, settings := count(&models.Category{}), count(&models.Product{}), count(&models.Setting{})
	colors, sizes := count(&models.Color{}), count(&models.Size{})

	require.NoError(t, DBSeed(ctx, db))

	assert.Equal(t, categories, count(&models.Category{}))
	assert.Equal(t, products, count(&models.Product{}))
	assert.Equal(t, settings, count(&models.Setting{}))
	assert.Equal(t, colors, count(&models.Color{}))
	assert.Equal(t, sizes, count(&models.Size{}))
	assert.EqualValues(t, 6, categories)

	var stamp models.Product
	require.NoError(t, db.Where("name = ?", "بصمة خشبية بآية الكرسي").First(&stamp).Error)
	assert.True(t, stamp.Price.Equal(decimal.NewFromInt(120)), stamp.Price.String())
	assert.True(t, stamp.IsActive)
	require.NotNil(t, stamp.CategoryID)

	var category models.Category
	require.NoError(t, db.First(&category, "id = ?", *stamp.CategoryID).Error)
	assert.Equal(t, "wooden-stamps", category.Slug)
}
