package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type HeroImageRepository interface {
	Create(ctx context.Context, image *models.HeroImage) error
	GetByID(ctx context.Context, id string) (*models.HeroImage, error)
	List(ctx context.Context, opts ListOptions) ([]models.HeroImage, error)
	Update(ctx context.Context, image *models.HeroImage) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

type heroImageRepository struct {
	db *gorm.DB
}

func NewHeroImageRepository(db *gorm.DB) HeroImageRepository {
	return &heroImageRepository{db: db}
}

func (r *heroImageRepository) Create(ctx context.Context, image *models.HeroImage) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create hero image: %w", err)
	}
	return nil
}

func (r *heroImageRepository) GetByID(ctx context.Context, id string) (*models.HeroImage, error) {
	var image models.HeroImage
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hero image %s: %w", id, err)
	}
	return &image, nil
}

func (r *heroImageRepository) List(ctx context.Context, opts ListOptions) ([]models.HeroImage, error) {
	var images []models.HeroImage
	err := r.db.WithContext(ctx).
		Scopes(activeScope(opts)).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list hero images: %w", err)
	}
	return images, nil
}

func (r *heroImageRepository) Update(ctx context.Context, image *models.HeroImage) error {
	if err := r.db.WithContext(ctx).Save(image).Error; err != nil {
		return fmt.Errorf("failed to update hero image %s: %w", image.ID, err)
	}
	return nil
}

func (r *heroImageRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.HeroImage{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete hero image %s: %w", id, err)
	}
	return nil
}

func (r *heroImageRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.HeroImage{}).Where("is_active = ?", true).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active hero images: %w", err)
	}
	return total, nil
}
