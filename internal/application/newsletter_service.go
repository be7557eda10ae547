package application

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/repository"
)

// ErrInvalidEmail means the submitted address could not be parsed.
var ErrInvalidEmail = errors.New("invalid email address")

// NewsletterService handles newsletter signups from the landing page.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) error
}

type newsletterServiceImpl struct {
	subscribersRepo repository.SubscribersRepository
}

// NewNewsletterService creates a new NewsletterService instance.
func NewNewsletterService(subscribersRepo repository.SubscribersRepository) NewsletterService {
	return &newsletterServiceImpl{
		subscribersRepo: subscribersRepo,
	}
}

// Subscribe validates the address and stores it. Addresses are lowercased
// so the duplicate check is case-insensitive.
func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidEmail
	}

	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return ErrInvalidEmail
	}

	if err := s.subscribersRepo.Subscribe(ctx, email); err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			return err
		}
		return fmt.Errorf("failed to store subscriber: %w", err)
	}
	return nil
}
