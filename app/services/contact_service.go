package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
)

// Notifier is satisfied by *Mailer.
type Notifier interface {
	SendHTMLEmail(to, subject, htmlBody string) error
}

type ContactService struct {
	repo       repositories.ContactMessageRepository
	notifier   Notifier
	adminEmail string
	wg         sync.WaitGroup
}

// NewContactService accepts a nil notifier, in which case messages are only stored.
func NewContactService(repo repositories.ContactMessageRepository, notifier Notifier, adminEmail string) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, adminEmail: adminEmail}
}

// Submit stores the message and e-mails the admin in the background.
func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage) error {
	if err := s.repo.Create(ctx, msg); err != nil {
		return err
	}

	if s.notifier == nil || s.adminEmail == "" {
		return nil
	}

	stored := *msg
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		subject := "رسالة تواصل جديدة من " + strings.Join(strings.Fields(stored.Name), " ")
		if err := s.notifier.SendHTMLEmail(s.adminEmail, subject, BuildContactEmailBody(stored)); err != nil {
			log.Printf("ContactService.Submit: notification for message %s failed: %v", stored.ID, err)
		}
	}()
	return nil
}

// Wait blocks until pending notifications finish.
func (s *ContactService) Wait() {
	s.wg.Wait()
}
