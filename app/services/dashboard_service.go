package services

import (
	"context"
	"log"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
)

const recentLimit = 5

type DashboardStats struct {
	TotalProducts   int64
	TotalCategories int64
	TotalOrders     int64
	TotalViews      int64
	UnreadMessages  int64
	RecentProducts  []models.Product
	RecentOrders    []models.Order
	RecentMessages  []models.ContactMessage
	TopInquiries    []InquiryStat
}

type DashboardService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	orders     repositories.OrderRepository
	analytics  repositories.AnalyticsRepository
	messages   repositories.ContactMessageRepository
}

func NewDashboardService(
	products repositories.ProductRepository,
	categories repositories.CategoryRepository,
	orders repositories.OrderRepository,
	analytics repositories.AnalyticsRepository,
	messages repositories.ContactMessageRepository,
) *DashboardService {
	return &DashboardService{
		products:   products,
		categories: categories,
		orders:     orders,
		analytics:  analytics,
		messages:   messages,
	}
}

// Stats collects every widget independently; a failing widget is logged and left empty.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var firstErr error
	keep := func(what string, err error) {
		if err == nil {
			return
		}
		log.Printf("DashboardService.Stats: %s: %v", what, err)
		if firstErr == nil {
			firstErr = err
		}
	}

	var err error
	stats.TotalProducts, err = s.products.Count(ctx)
	keep("count products", err)
	stats.TotalCategories, err = s.categories.Count(ctx)
	keep("count categories", err)
	stats.TotalOrders, err = s.orders.Count(ctx)
	keep("count orders", err)
	stats.TotalViews, err = s.analytics.CountViews(ctx)
	keep("count views", err)
	stats.UnreadMessages, err = s.messages.CountUnread(ctx)
	keep("count unread messages", err)

	stats.RecentProducts, err = s.products.Recent(ctx, recentLimit)
	keep("recent products", err)
	stats.RecentOrders, err = s.orders.Recent(ctx, recentLimit)
	keep("recent orders", err)
	stats.RecentMessages, err = s.messages.Recent(ctx, recentLimit)
	keep("recent messages", err)

	ranking, err := s.InquiryRanking(ctx)
	keep("inquiry ranking", err)
	if len(ranking) > recentLimit {
		ranking = ranking[:recentLimit]
	}
	stats.TopInquiries = ranking

	return stats, firstErr
}

func (s *DashboardService) InquiryRanking(ctx context.Context) ([]InquiryStat, error) {
	inquiries, err := s.analytics.ListInquiries(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.GetByIDs(ctx, uniqueProductIDs(inquiries))
	if err != nil {
		return nil, err
	}
	return RankInquiries(inquiries, products), nil
}
