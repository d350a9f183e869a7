package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Rakhulsr/go-catalog/app/db/testdb"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryListOrderAndActiveFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(testdb.Open(t))

	require.NoError(t, repo.Create(ctx, &models.Category{Name: "ب", Slug: "b", SortOrder: 2, IsActive: true}))
	require.NoError(t, repo.Create(ctx, &models.Category{Name: "أ", Slug: "a", SortOrder: 1, IsActive: true}))
	require.NoError(t, repo.Create(ctx, &models.Category{Name: "ج", Slug: "c", SortOrder: 0, IsActive: false}))

	all, err := repo.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].Slug, all[1].Slug, all[2].Slug})
	assert.False(t, all[0].IsActive, "inactive flag must survive create")

	active, err := repo.List(ctx, ListOptions{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	bySlug, err := repo.GetBySlug(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, "أ", bySlug.Name)

	missing, err := repo.GetByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.UpdateSortOrder(ctx, bySlug.ID, 7))
	reloaded, err := repo.GetByID(ctx, bySlug.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.SortOrder)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestProductWithGalleryImages(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testdb.Open(t))

	product := &models.Product{Name: "بصمة خشبية", Price: decimal.NewFromInt(120), IsActive: true}
	require.NoError(t, repo.Create(ctx, product))
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, models.DefaultPriceCurrency, product.PriceCurrency)

	require.NoError(t, repo.CreateImage(ctx, &models.ProductImage{ProductID: product.ID, ImageURL: "/2.png", SortOrder: 1, IsActive: true}))
	require.NoError(t, repo.CreateImage(ctx, &models.ProductImage{ProductID: product.ID, ImageURL: "/1.png", SortOrder: 0, IsActive: true}))
	require.NoError(t, repo.CreateImage(ctx, &models.ProductImage{ProductID: product.ID, ImageURL: "/x.png", SortOrder: 2, IsActive: false}))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(120)))
	require.Len(t, got.Images, 3)
	assert.Equal(t, "/1.png", got.Images[0].ImageURL)

	active, err := repo.ListImages(ctx, product.ID, ListOptions{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, repo.Delete(ctx, product.ID))
	gone, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	orphans, err := repo.ListImages(ctx, product.ID, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, orphans, 3, "product delete does not cascade")
}

func TestOrderListSearchAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testdb.Open(t))

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		{CustomerName: "Ahmed Ali", CustomerPhone: "0100", CustomerEmail: "ahmed@example.com", TotalAmount: decimal.NewFromInt(100), CreatedAt: base},
		{CustomerName: "منى", CustomerPhone: "0111", Status: models.OrderStatusShipped, TotalAmount: decimal.NewFromInt(50), CreatedAt: base.Add(time.Hour)},
		{CustomerName: "Sara", CustomerPhone: "0122", CustomerEmail: "SARA@example.com", Status: models.OrderStatusDelivered, TotalAmount: decimal.NewFromInt(75), CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, o := range orders {
		require.NoError(t, repo.Create(ctx, o))
	}
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)

	all, err := repo.List(ctx, OrderFilter{Status: "all"})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Sara", all[0].CustomerName, "newest first")

	bySearch, err := repo.List(ctx, OrderFilter{Search: "sara"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)

	byPhone, err := repo.List(ctx, OrderFilter{Search: "0111"})
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "منى", byPhone[0].CustomerName)

	shipped, err := repo.List(ctx, OrderFilter{Status: models.OrderStatusShipped})
	require.NoError(t, err)
	require.Len(t, shipped, 1)

	require.NoError(t, repo.UpdateStatus(ctx, orders[0].ID, models.OrderStatusCancelled))
	assert.Error(t, repo.UpdateStatus(ctx, orders[0].ID, "lost"))
	assert.Error(t, repo.UpdateStatus(ctx, "missing", models.OrderStatusShipped))

	got, err := repo.GetByID(ctx, orders[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
}

func TestSettingsAndHeroImages(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	settings := NewSettingRepository(db)
	heroes := NewHeroImageRepository(db)

	require.NoError(t, settings.Create(ctx, &models.Setting{Key: "site_name", Value: "متجر"}))
	require.NoError(t, settings.UpdateValue(ctx, "site_name", "متجر الهدايا"))
	s, err := settings.GetByKey(ctx, "site_name")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "متجر الهدايا", s.Value)

	none, err := settings.GetByKey(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, heroes.Create(ctx, &models.HeroImage{ImageURL: "/a", IsActive: true}))
	require.NoError(t, heroes.Create(ctx, &models.HeroImage{ImageURL: "/b", IsActive: false}))
	count, err := heroes.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestContactMessagesAndAnalytics(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	messages := NewContactMessageRepository(db)
	analytics := NewAnalyticsRepository(db)

	msg := &models.ContactMessage{Name: "Ali", Message: "مرحبا"}
	require.NoError(t, messages.Create(ctx, msg))
	unread, err := messages.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	require.NoError(t, messages.MarkRead(ctx, msg.ID))
	unread, err = messages.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)

	require.NoError(t, analytics.CreateView(ctx, &models.ProductView{ProductID: "p1"}))
	require.NoError(t, analytics.CreateInquiry(ctx, &models.ProductInquiry{ProductID: "p1"}))
	views, err := analytics.CountViews(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, views)
	inquiries, err := analytics.ListInquiries(ctx)
	require.NoError(t, err)
	assert.Len(t, inquiries, 1)
}
