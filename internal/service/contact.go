package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salesdash/api/internal/domain"
	"github.com/salesdash/api/internal/event"
	"github.com/salesdash/api/internal/repository"
	apperrors "github.com/salesdash/api/pkg/errors"
)

// ContactService implements the business logic for CRM contacts.
type ContactService struct {
	contactRepo repository.ContactRepository
	producer    *event.Producer
	logger      *slog.Logger
}

// NewContactService creates a contact service.
func NewContactService(contactRepo repository.ContactRepository, producer *event.Producer, logger *slog.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		producer:    producer,
		logger:      logger,
	}
}

// CreateContactInput holds the parameters for creating a contact.
type CreateContactInput struct {
	Name          string
	Email         string
	Phone         string
	Company       string
	Status        string
	Notes         string
	LastContacted *time.Time
}

// UpdateContactInput holds the parameters for a partial or full contact
// update. Nil fields are left unchanged.
type UpdateContactInput struct {
	Name          *string
	Email         *string
	Phone         *string
	Company       *string
	Status        *string
	Notes         *string
	LastContacted *time.Time
}

func invalidStatus(status string) error {
	return apperrors.InvalidInput(fmt.Sprintf(
		"status must be one of: %s", strings.Join(domain.ValidContactStatuses(), ", "),
	) + fmt.Sprintf(" (got %q)", status))
}

// Create validates and persists a new contact. An omitted status defaults
// to Lead; an unrecognized status is rejected.
func (s *ContactService) Create(ctx context.Context, input CreateContactInput) (*domain.Contact, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("name is required")
	}
	if input.Email == "" {
		return nil, apperrors.InvalidInput("email is required")
	}

	status := input.Status
	if status == "" {
		status = domain.ContactStatusLead
	}
	if !domain.IsValidContactStatus(status) {
		return nil, invalidStatus(status)
	}

	now := time.Now().UTC()
	contact := &domain.Contact{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(input.Name),
		Email:         normalizeEmail(input.Email),
		Phone:         input.Phone,
		Company:       input.Company,
		Status:        status,
		Notes:         input.Notes,
		LastContacted: input.LastContacted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.publishChange(ctx, "created", contact)

	s.logger.InfoContext(ctx, "contact created",
		slog.String("contact_id", contact.ID),
		slog.String("status", contact.Status),
	)

	return contact, nil
}

// List returns every contact, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.contactRepo.List(ctx)
}

// GetByID retrieves a single contact.
func (s *ContactService) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	return s.contactRepo.GetByID(ctx, id)
}

// Update applies a partial or full update to an existing contact. Enum
// membership is re-checked on every write.
func (s *ContactService) Update(ctx context.Context, id string, input UpdateContactInput) (*domain.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("name must not be empty")
		}
		contact.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, apperrors.InvalidInput("email must not be empty")
		}
		contact.Email = normalizeEmail(*input.Email)
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.Company != nil {
		contact.Company = *input.Company
	}
	if input.Status != nil {
		if !domain.IsValidContactStatus(*input.Status) {
			return nil, invalidStatus(*input.Status)
		}
		contact.Status = *input.Status
	}
	if input.Notes != nil {
		contact.Notes = *input.Notes
	}
	if input.LastContacted != nil {
		contact.LastContacted = input.LastContacted
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	s.publishChange(ctx, "updated", contact)

	s.logger.InfoContext(ctx, "contact updated",
		slog.String("contact_id", contact.ID),
	)

	return contact, nil
}

// Delete removes one contact.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishChange(ctx, "deleted", &domain.Contact{ID: id})

	s.logger.InfoContext(ctx, "contact deleted",
		slog.String("contact_id", id),
	)

	return nil
}

func (s *ContactService) publishChange(ctx context.Context, action string, contact *domain.Contact) {
	if err := s.producer.PublishContactChanged(ctx, action, contact); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish contact event",
			slog.String("action", action),
			slog.String("contact_id", contact.ID),
			slog.String("error", err.Error()),
		)
	}
}
