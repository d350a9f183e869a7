package repositories

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
	Recent(ctx context.Context, limit int) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int64, error)
}

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *contactMessageRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func (r *contactMessageRepository) Recent(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent contact messages: %w", err)
	}
	return messages, nil
}

func (r *contactMessageRepository) MarkRead(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark contact message %s as read: %w", id, err)
	}
	return nil
}

func (r *contactMessageRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete contact message %s: %w", id, err)
	}
	return nil
}

func (r *contactMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread contact messages: %w", err)
	}
	return total, nil
}
