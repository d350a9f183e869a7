package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type ColorRepository interface {
	Create(ctx context.Context, color *models.Color) error
	GetByID(ctx context.Context, id string) (*models.Color, error)
	List(ctx context.Context, opts ListOptions) ([]models.Color, error)
	Update(ctx context.Context, color *models.Color) error
	Delete(ctx context.Context, id string) error
}

type SizeRepository interface {
	Create(ctx context.Context, size *models.Size) error
	GetByID(ctx context.Context, id string) (*models.Size, error)
	List(ctx context.Context, opts ListOptions) ([]models.Size, error)
	Update(ctx context.Context, size *models.Size) error
	Delete(ctx context.Context, id string) error
}

type colorRepository struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) ColorRepository {
	return &colorRepository{db: db}
}

func (r *colorRepository) Create(ctx context.Context, color *models.Color) error {
	if err := r.db.WithContext(ctx).Create(color).Error; err != nil {
		return fmt.Errorf("failed to create color: %w", err)
	}
	return nil
}

func (r *colorRepository) GetByID(ctx context.Context, id string) (*models.Color, error) {
	var color models.Color
	err := r.db.WithContext(ctx).First(&color, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get color %s: %w", id, err)
	}
	return &color, nil
}

func (r *colorRepository) List(ctx context.Context, opts ListOptions) ([]models.Color, error) {
	var colors []models.Color
	err := r.db.WithContext(ctx).Scopes(activeScope(opts)).Order("sort_order ASC").Find(&colors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	return colors, nil
}

func (r *colorRepository) Update(ctx context.Context, color *models.Color) error {
	if err := r.db.WithContext(ctx).Save(color).Error; err != nil {
		return fmt.Errorf("failed to update color %s: %w", color.ID, err)
	}
	return nil
}

func (r *colorRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Color{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete color %s: %w", id, err)
	}
	return nil
}

type sizeRepository struct {
	db *gorm.DB
}

func NewSizeRepository(db *gorm.DB) SizeRepository {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) Create(ctx context.Context, size *models.Size) error {
	if err := r.db.WithContext(ctx).Create(size).Error; err != nil {
		return fmt.Errorf("failed to create size: %w", err)
	}
	return nil
}

func (r *sizeRepository) GetByID(ctx context.Context, id string) (*models.Size, error) {
	var size models.Size
	err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get size %s: %w", id, err)
	}
	return &size, nil
}

func (r *sizeRepository) List(ctx context.Context, opts ListOptions) ([]models.Size, error) {
	var sizes []models.Size
	err := r.db.WithContext(ctx).Scopes(activeScope(opts)).Order("sort_order ASC").Find(&sizes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}
	return sizes, nil
}

func (r *sizeRepository) Update(ctx context.Context, size *models.Size) error {
	if err := r.db.WithContext(ctx).Save(size).Error; err != nil {
		return fmt.Errorf("failed to update size %s: %w", size.ID, err)
	}
	return nil
}

func (r *sizeRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Size{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete size %s: %w", id, err)
	}
	return nil
}
