package fakers

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderFaker builds an order for one to three units of a random product.
func OrderFaker(products []models.Product) *models.Order {
	total := decimal.NewFromInt(int64(rand.Intn(500) + 50))
	var notes string
	if len(products) > 0 {
		p := products[rand.Intn(len(products))]
		qty := rand.Intn(3) + 1
		total = p.Price.Mul(decimal.NewFromInt(int64(qty)))
		notes = fmt.Sprintf("%d × %s", qty, p.Name)
	}

	address := faker.GetRealAddress()
	status := models.OrderStatuses[rand.Intn(len(models.OrderStatuses))].Value

	return &models.Order{
		CustomerName:    faker.Name(),
		CustomerPhone:   faker.Phonenumber(),
		CustomerEmail:   faker.Email(),
		CustomerAddress: fmt.Sprintf("%s, %s", address.Address, address.City),
		Status:          status,
		TotalAmount:     total,
		Notes:           notes,
		CreatedAt:       time.Now().Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
	}
}

// InquiryFaker records an inquiry for a random product from a fake visitor.
func InquiryFaker(products []models.Product) *models.ProductInquiry {
	if len(products) == 0 {
		return nil
	}
	ip := faker.IPv4()
	return &models.ProductInquiry{
		ProductID: products[rand.Intn(len(products))].ID,
		VisitorIP: &ip,
		CreatedAt: time.Now().Add(-time.Duration(rand.Intn(7*24)) * time.Hour),
	}
}

func SeedFakeOrders(ctx context.Context, db *gorm.DB, n int) error {
	products, err := loadProducts(ctx, db)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := db.WithContext(ctx).Create(OrderFaker(products)).Error; err != nil {
			return fmt.Errorf("failed to create fake order: %w", err)
		}
	}
	return nil
}

func SeedFakeInquiries(ctx context.Context, db *gorm.DB, n int) error {
	products, err := loadProducts(ctx, db)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		inquiry := InquiryFaker(products)
		if inquiry == nil {
			return nil
		}
		if err := db.WithContext(ctx).Create(inquiry).Error; err != nil {
			return fmt.Errorf("failed to create fake inquiry: %w", err)
		}
	}
	return nil
}

func loadProducts(ctx context.Context, db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}
