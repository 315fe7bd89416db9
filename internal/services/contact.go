package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nurshop/storefront/internal/errors"
	"github.com/nurshop/storefront/internal/models"
	repository "github.com/nurshop/storefront/internal/repositories"
)

// ContactService records contact-form submissions. The original storefront
// only logged these; persisting them is the local stand-in for sending them
// to a backend.
type ContactService struct {
	repo      repository.ContactRepository
	sanitizer *bluemonday.Policy
}

func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {

	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      s.sanitizer.Sanitize(req.Name),
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   s.sanitizer.Sanitize(req.Subject),
		Message:   s.sanitizer.Sanitize(req.Message),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, msg); err != nil {
		return nil, errors.StorageError("Failed to save contact message").WithError(err)
	}

	return &msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.List(ctx)
}
