package services

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/mail"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/db/testdb"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestFilterByCategory(t *testing.T) {
	categories := []models.Category{{ID: "c1", Slug: "wooden-stamps"}, {ID: "c2", Slug: "incense"}}
	products := []models.Product{
		{ID: "p1", CategoryID: strPtr("c1")},
		{ID: "p2", CategoryID: strPtr("c2")},
		{ID: "p3"},
		{ID: "p4", CategoryID: strPtr("c1")},
	}

	assert.Equal(t, products, FilterByCategory(products, categories, "all"))
	assert.Equal(t, products, FilterByCategory(products, categories, ""))
	assert.Empty(t, FilterByCategory(products, categories, "missing"))

	for _, c := range categories {
		filtered := FilterByCategory(products, categories, c.Slug)
		assert.NotEmpty(t, filtered)
		for _, p := range filtered {
			assert.Equal(t, c.ID, p.CategoryRef())
		}
	}
	assert.Len(t, FilterByCategory(products, categories, "wooden-stamps"), 2)
}

func TestGallery(t *testing.T) {
	product := models.Product{
		ImageURL: "/main.png",
		Images: []models.ProductImage{
			{ImageURL: "/a.png", IsActive: true},
			{ImageURL: "/hidden.png", IsActive: false},
			{ImageURL: "/b.png", IsActive: true},
		},
	}
	assert.Equal(t, []string{"/main.png", "/a.png", "/b.png"}, Gallery(product))
	assert.Empty(t, Gallery(models.Product{}))
}

func TestCanActivateBoundary(t *testing.T) {
	assert.True(t, CanActivate(4, false))
	assert.False(t, CanActivate(5, false))
	assert.False(t, CanActivate(6, false))
	assert.True(t, CanActivate(5, true))
}

func TestHeroImageServiceRejectsSixthActiveImage(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewHeroImageRepository(testdb.Open(t))
	svc := NewHeroImageService(repo)

	for i := 0; i < models.MaxActiveHeroImages; i++ {
		require.NoError(t, svc.Create(ctx, &models.HeroImage{ImageURL: "/x.png", IsActive: true}))
	}
	err := svc.Create(ctx, &models.HeroImage{ImageURL: "/six.png", IsActive: true})
	assert.ErrorIs(t, err, ErrHeroImageLimit)

	inactive := &models.HeroImage{ImageURL: "/off.png", IsActive: false}
	require.NoError(t, svc.Create(ctx, inactive))

	previous := *inactive
	inactive.IsActive = true
	assert.ErrorIs(t, svc.Update(ctx, previous, inactive), ErrHeroImageLimit)

	images, err := repo.List(ctx, repositories.ListOptions{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, images, models.MaxActiveHeroImages)

	active := images[0]
	previous = active
	active.Title = "edited"
	assert.NoError(t, svc.Update(ctx, previous, &active), "editing an already active image is allowed")

	assert.ErrorIs(t, svc.CheckCapacity(ctx, true, false), ErrHeroImageLimit)
	assert.NoError(t, svc.CheckCapacity(ctx, true, true))
	assert.NoError(t, svc.CheckCapacity(ctx, false, false))
}

func TestSettingsServiceUpsert(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewSettingRepository(testdb.Open(t))
	svc := NewSettingsService(repo)

	require.NoError(t, repo.Create(ctx, &models.Setting{Key: "site_name", Value: "old"}))
	require.NoError(t, svc.Save(ctx, map[string]string{
		"site_name":        " متجر الهدايا ",
		"contact_whatsapp": "201004119595",
		"unknown_key":      "ignored",
	}))

	settingsMap, all, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "متجر الهدايا", settingsMap["site_name"])
	assert.Equal(t, "201004119595", settingsMap.Get("contact_whatsapp", ""))

	inserted, err := repo.GetByKey(ctx, "contact_whatsapp")
	require.NoError(t, err)
	assert.Equal(t, "رقم الواتساب", inserted.Description)
}

type failingSettingRepo struct {
	repositories.SettingRepository
	failKey string
	saved   []string
}

func (f *failingSettingRepo) GetByKey(ctx context.Context, key string) (*models.Setting, error) {
	return nil, nil
}

func (f *failingSettingRepo) Create(ctx context.Context, s *models.Setting) error {
	if s.Key == f.failKey {
		return errors.New("boom")
	}
	f.saved = append(f.saved, s.Key)
	return nil
}

func TestSettingsServiceContinuesPastFailures(t *testing.T) {
	repo := &failingSettingRepo{failKey: "site_name"}
	svc := NewSettingsService(repo)

	err := svc.Save(context.Background(), map[string]string{"site_name": "a", "hero_title": "b", "logo_url": "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site_name")
	assert.ElementsMatch(t, []string{"hero_title", "logo_url"}, repo.saved)
}

func TestRankInquiries(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	inquiries := []models.ProductInquiry{
		{ProductID: "a", CreatedAt: base},
		{ProductID: "b", CreatedAt: base.Add(time.Hour)},
		{ProductID: "a", CreatedAt: base.Add(3 * time.Hour)},
		{ProductID: "c", CreatedAt: base.Add(2 * time.Hour)},
		{ProductID: "b", CreatedAt: base.Add(30 * time.Minute)},
		{ProductID: "b", CreatedAt: base.Add(10 * time.Minute)},
	}
	products := []models.Product{{ID: "a", Name: "مبخرة"}, {ID: "b", Name: "بصمة"}}

	stats := RankInquiries(inquiries, products)
	require.Len(t, stats, 2, "inquiries for the deleted product c are dropped")
	assert.Equal(t, "b", stats[0].ProductID)
	assert.Equal(t, 3, stats[0].Count)
	assert.Equal(t, base.Add(time.Hour), stats[0].LastInquiryAt)
	assert.Equal(t, "a", stats[1].ProductID)
	assert.Equal(t, "مبخرة", stats[1].ProductName)
	for _, s := range stats {
		assert.NotEqual(t, "c", s.ProductID)
	}

	assert.Empty(t, RankInquiries(nil, nil))
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	products := repositories.NewProductRepository(db)
	analytics := repositories.NewAnalyticsRepository(db)
	svc := NewDashboardService(products, repositories.NewCategoryRepository(db), repositories.NewOrderRepository(db),
		analytics, repositories.NewContactMessageRepository(db))

	for i := 0; i < 7; i++ {
		require.NoError(t, products.Create(ctx, &models.Product{Name: "p", Price: decimal.NewFromInt(1), IsActive: true}))
	}
	recent, err := products.Recent(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, analytics.CreateInquiry(ctx, &models.ProductInquiry{ProductID: recent[0].ID}))
	require.NoError(t, analytics.CreateView(ctx, &models.ProductView{ProductID: recent[0].ID}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 7, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.TotalViews)
	assert.Len(t, stats.RecentProducts, 5)
	require.Len(t, stats.TopInquiries, 1)
	assert.Equal(t, 1, stats.TopInquiries[0].Count)
}

func TestTrackerWritesQueuedEventsOnClose(t *testing.T) {
	repo := repositories.NewAnalyticsRepository(testdb.Open(t))
	tracker := NewTracker(repo, 16, 2)

	for i := 0; i < 5; i++ {
		assert.True(t, tracker.TrackView("p1", "127.0.0.1"))
	}
	assert.True(t, tracker.TrackInquiry("p1", ""))
	tracker.Close()
	tracker.Close()

	views, err := repo.CountViews(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, views)

	inquiries, err := repo.ListInquiries(context.Background())
	require.NoError(t, err)
	require.Len(t, inquiries, 1)
	assert.Nil(t, inquiries[0].VisitorIP)

	assert.False(t, tracker.TrackView("p1", ""), "closed tracker rejects events")
}

type blockingAnalyticsRepo struct {
	repositories.AnalyticsRepository
	release chan struct{}
	mu      sync.Mutex
	views   int
}

func (b *blockingAnalyticsRepo) CreateView(ctx context.Context, v *models.ProductView) error {
	<-b.release
	b.mu.Lock()
	b.views++
	b.mu.Unlock()
	return nil
}

func TestTrackerDropsWhenQueueIsFull(t *testing.T) {
	repo := &blockingAnalyticsRepo{release: make(chan struct{})}
	tracker := NewTracker(repo, 1, 1)

	accepted := 0
	start := time.Now()
	for i := 0; i < 10; i++ {
		if tracker.TrackView("p", "") {
			accepted++
		}
	}
	assert.Less(t, time.Since(start), time.Second, "tracking never blocks")
	assert.Less(t, accepted, 10)
	assert.GreaterOrEqual(t, accepted, 1)

	close(repo.release)
	tracker.Close()
	assert.Equal(t, accepted, repo.views)
}

func TestAuthService(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(configs.AdminCredentials{Username: "admin", PasswordHash: hash})

	assert.NoError(t, svc.Authenticate("admin", "admin"))
	assert.ErrorIs(t, svc.Authenticate("admin", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Authenticate("root", "admin"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Authenticate("", ""), ErrInvalidCredentials)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (r *recordingNotifier) SendHTMLEmail(to, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, to+"|"+subject)
	return nil
}

func TestContactServiceStoresAndNotifies(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewContactMessageRepository(testdb.Open(t))
	notifier := &recordingNotifier{}
	svc := NewContactService(repo, notifier, "owner@example.com")

	require.NoError(t, svc.Submit(ctx, &models.ContactMessage{Name: "منى", Message: "<b>hi</b>"}))
	svc.Wait()

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "owner@example.com")

	body := BuildContactEmailBody(messages[0])
	assert.Contains(t, body, "&lt;b&gt;hi&lt;/b&gt;")

	silent := NewContactService(repo, nil, "")
	require.NoError(t, silent.Submit(ctx, &models.ContactMessage{Name: "x", Message: "y"}))
}

func TestContactServiceKeepsNameOnOneSubjectLine(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewContactService(repositories.NewContactMessageRepository(testdb.Open(t)), notifier, "owner@example.com")

	require.NoError(t, svc.Submit(context.Background(), &models.ContactMessage{Name: "x\r\nBcc: victim@example.com", Message: "y"}))
	svc.Wait()

	require.Len(t, notifier.sent, 1)
	assert.NotContains(t, notifier.sent[0], "\r")
	assert.NotContains(t, notifier.sent[0], "\n")
	assert.Contains(t, notifier.sent[0], "x Bcc: victim@example.com")
}

func TestBuildMessageHeaders(t *testing.T) {
	raw := buildMessage("shop@example.com", "owner@example.com", "رسالة من x\r\nBcc: victim@example.com", "<p>hi</p>")

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Empty(t, msg.Header.Get("Bcc"))
	assert.Equal(t, "owner@example.com", msg.Header.Get("To"))

	encoded := msg.Header.Get("Subject")
	assert.True(t, strings.HasPrefix(encoded, "=?UTF-8?b?"), encoded)
	subject, err := new(mime.WordDecoder).DecodeHeader(encoded)
	require.NoError(t, err)
	assert.Equal(t, "رسالة من x  Bcc: victim@example.com", subject)

	plain := buildMessage("shop@example.com", "owner@example.com", "hello", "")
	msg, err = mail.ReadMessage(bytes.NewReader(plain))
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Header.Get("Subject"))
}
