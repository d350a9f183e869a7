package repositories

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	CreateView(ctx context.Context, view *models.ProductView) error
	CreateInquiry(ctx context.Context, inquiry *models.ProductInquiry) error
	CountViews(ctx context.Context) (int64, error)
	ListInquiries(ctx context.Context) ([]models.ProductInquiry, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CreateView(ctx context.Context, view *models.ProductView) error {
	if err := r.db.WithContext(ctx).Create(view).Error; err != nil {
		return fmt.Errorf("failed to record view of product %s: %w", view.ProductID, err)
	}
	return nil
}

func (r *analyticsRepository) CreateInquiry(ctx context.Context, inquiry *models.ProductInquiry) error {
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return fmt.Errorf("failed to record inquiry for product %s: %w", inquiry.ProductID, err)
	}
	return nil
}

func (r *analyticsRepository) CountViews(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ProductView{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count product views: %w", err)
	}
	return total, nil
}

func (r *analyticsRepository) ListInquiries(ctx context.Context) ([]models.ProductInquiry, error) {
	var inquiries []models.ProductInquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to list product inquiries: %w", err)
	}
	return inquiries, nil
}
