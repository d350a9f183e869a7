package fakers

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-catalog/app/db/testdb"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFakerUsesProductPrice(t *testing.T) {
	products := []models.Product{{ID: "p1", Name: "مبخرة", Price: decimal.NewFromInt(40)}}

	order := OrderFaker(products)
	assert.NotEmpty(t, order.CustomerName)
	assert.NotEmpty(t, order.CustomerPhone)
	assert.True(t, models.IsValidOrderStatus(order.Status))
	assert.True(t, order.TotalAmount.Mod(decimal.NewFromInt(40)).IsZero())
	assert.Contains(t, order.Notes, "مبخرة")
}

func TestInquiryFakerWithoutProducts(t *testing.T) {
	assert.Nil(t, InquiryFaker(nil))
}

func TestSeedFakeRows(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	require.NoError(t, db.Create(&models.Product{Name: "بصمة", Price: decimal.NewFromInt(120), IsActive: true}).Error)

	require.NoError(t, SeedFakeOrders(ctx, db, 3))
	require.NoError(t, SeedFakeInquiries(ctx, db, 4))

	var orders, inquiries int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.ProductInquiry{}).Count(&inquiries).Error)
	assert.EqualValues(t, 3, orders)
	assert.EqualValues(t, 4, inquiries)
}
