package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, opts ListOptions) ([]models.Product, error)
	Recent(ctx context.Context, limit int) ([]models.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	ListImages(ctx context.Context, productID string, opts ListOptions) ([]models.ProductImage, error)
	GetImage(ctx context.Context, id string) (*models.ProductImage, error)
	CreateImage(ctx context.Context, image *models.ProductImage) error
	DeleteImage(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	if err := p.db.WithContext(ctx).Omit("Images").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID preloads every gallery image; callers filter by is_active.
func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

func (p *productRepository) List(ctx context.Context, opts ListOptions) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Scopes(activeScope(opts)).
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (p *productRepository) Recent(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent products: %w", err)
	}
	return products, nil
}

func (p *productRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := p.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by ids: %w", err)
	}
	return products, nil
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	if err := p.db.WithContext(ctx).Omit("Images").Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	return nil
}

// Delete removes only the product row; gallery images and analytics rows are left behind.
func (p *productRepository) Delete(ctx context.Context, id string) error {
	if err := p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

func (p *productRepository) ListImages(ctx context.Context, productID string, opts ListOptions) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := p.db.WithContext(ctx).
		Scopes(activeScope(opts)).
		Where("product_id = ?", productID).
		Order("sort_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list images of product %s: %w", productID, err)
	}
	return images, nil
}

func (p *productRepository) GetImage(ctx context.Context, id string) (*models.ProductImage, error) {
	var image models.ProductImage
	err := p.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product image %s: %w", id, err)
	}
	return &image, nil
}

func (p *productRepository) CreateImage(ctx context.Context, image *models.ProductImage) error {
	if err := p.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create product image: %w", err)
	}
	return nil
}

func (p *productRepository) DeleteImage(ctx context.Context, id string) error {
	if err := p.db.WithContext(ctx).Delete(&models.ProductImage{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product image %s: %w", id, err)
	}
	return nil
}
