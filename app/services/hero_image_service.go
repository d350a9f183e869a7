package services

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
)

var ErrHeroImageLimit = errors.New("active hero image limit reached")

// CanActivate reports whether one more image may become active. wasActive is true when
// the image being saved already counts towards activeCount.
func CanActivate(activeCount int64, wasActive bool) bool {
	if wasActive {
		return true
	}
	return activeCount < models.MaxActiveHeroImages
}

type HeroImageService struct {
	repo repositories.HeroImageRepository
}

func NewHeroImageService(repo repositories.HeroImageRepository) *HeroImageService {
	return &HeroImageService{repo: repo}
}

// CheckCapacity returns ErrHeroImageLimit when saving an image as active would exceed the
// limit. Handlers call it before uploading so a rejected image leaves nothing in storage.
func (s *HeroImageService) CheckCapacity(ctx context.Context, active, wasActive bool) error {
	if !active || wasActive {
		return nil
	}
	count, err := s.repo.CountActive(ctx)
	if err != nil {
		return err
	}
	if !CanActivate(count, false) {
		return ErrHeroImageLimit
	}
	return nil
}

func (s *HeroImageService) Create(ctx context.Context, image *models.HeroImage) error {
	if err := s.CheckCapacity(ctx, image.IsActive, false); err != nil {
		return err
	}
	return s.repo.Create(ctx, image)
}

// Update applies changes to an existing image; previous is the stored row before edits.
func (s *HeroImageService) Update(ctx context.Context, previous models.HeroImage, image *models.HeroImage) error {
	if err := s.CheckCapacity(ctx, image.IsActive, previous.IsActive); err != nil {
		return err
	}
	return s.repo.Update(ctx, image)
}
