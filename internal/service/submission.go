package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/nousrire/backend/internal/domain"
	"github.com/nousrire/backend/internal/errors"
	"github.com/nousrire/backend/internal/logger"
	"github.com/nousrire/backend/internal/service/utils"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+\d{1,3})?\d{9,10}$`)
)

// Mailer is the transactional email collaborator. One call per
// recipient; the submission flow issues two (submitter + operator).
type Mailer interface {
	Send(ctx context.Context, toEmail, toName, message, replyTo string) error
}

type MarkerStorage interface {
	// GetMarker returns the marker for the email or a NotFoundError.
	GetMarker(email domain.Email) (*domain.SubmissionMarker, error)
	// PutMarker inserts or replaces the marker for its email.
	PutMarker(marker domain.SubmissionMarker) error
	// VoidMarker removes the marker so a later retry is not blocked.
	VoidMarker(email domain.Email) error
}

type SubmissionService interface {
	// Submit runs the public volunteer-interest flow. A nil error means
	// the notification emails went out; it does not guarantee the
	// submission record persisted.
	Submit(ctx context.Context, data domain.VolunteerCreationData) error
}

type Submission struct {
	volunteers    VolunteerStorage
	markers       MarkerStorage
	mailer        Mailer
	operatorEmail string
	now           func() time.Time
}

func NewSubmission(volunteers VolunteerStorage, markers MarkerStorage, mailer Mailer, operatorEmail string, now func() time.Time) SubmissionService {
	if now == nil {
		now = time.Now
	}
	return &Submission{volunteers, markers, mailer, operatorEmail, now}
}

func (s *Submission) Submit(ctx context.Context, data domain.VolunteerCreationData) error {
	sanitized, err := s.validate(data)
	if err != nil {
		return err
	}

	if err := s.checkDuplicate(sanitized.Email); err != nil {
		return err
	}

	// Email first: delivery failure aborts the whole submission and
	// nothing is persisted.
	if err := s.notify(ctx, *sanitized); err != nil {
		return err
	}

	now := s.now()
	marker := domain.SubmissionMarker{
		Email:     sanitized.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.MarkerTTL),
	}
	if err := s.markers.PutMarker(marker); err != nil {
		// The marker is advisory; losing it only weakens duplicate
		// detection.
		logger.Log.Warn("failed to write submission marker", "email", sanitized.Email, "error", err)
	}

	if _, err := s.volunteers.CreateVolunteer(*sanitized); err != nil {
		logger.Log.Error("failed to persist volunteer submission after successful delivery", "email", sanitized.Email, "error", err)
		// Compensate so the sender is not stuck behind an "already
		// submitted" marker for a record that never landed. This too can
		// fail silently.
		if voidErr := s.markers.VoidMarker(sanitized.Email); voidErr != nil {
			logger.Log.Warn("failed to void submission marker", "email", sanitized.Email, "error", voidErr)
		}
	}

	// Delivery succeeded, so the flow reports success even when the
	// record write above failed.
	return nil
}

func (s *Submission) validate(data domain.VolunteerCreationData) (*domain.VolunteerCreationData, error) {
	name := strings.TrimSpace(data.Name)
	if len([]rune(name)) < 3 {
		return nil, &errors.ValidationError{Message: "name must be at least 3 characters"}
	}

	email := strings.TrimSpace(data.Email)
	if !emailPattern.MatchString(email) {
		return nil, &errors.ValidationError{Message: "invalid email address"}
	}

	phone := strings.ReplaceAll(strings.TrimSpace(data.Phone), " ", "")
	if !phonePattern.MatchString(phone) {
		return nil, &errors.ValidationError{Message: "invalid phone number"}
	}

	return &domain.VolunteerCreationData{
		Name:         utils.SanitizeText(name),
		Email:        utils.SanitizeText(email),
		Phone:        utils.SanitizeText(phone),
		Message:      utils.SanitizeText(data.Message),
		Distribution: strings.TrimSpace(data.Distribution),
	}, nil
}

func (s *Submission) checkDuplicate(email domain.Email) error {
	marker, err := s.markers.GetMarker(email)
	if err != nil {
		if errors.Is[*errors.NotFoundError](err) {
			return nil
		}
		// Marker lookup is best-effort: a storage hiccup here must not
		// block a legitimate submission.
		logger.Log.Warn("submission marker lookup failed", "email", email, "error", err)
		return nil
	}
	if !marker.Expired(s.now()) {
		return &errors.ValidationError{Message: "a submission with this email was already received in the last 24 hours"}
	}
	return nil
}

func (s *Submission) notify(ctx context.Context, data domain.VolunteerCreationData) error {
	confirmation := fmt.Sprintf(
		"Bonjour %s,\n\nNous avons bien reçu votre demande pour devenir bénévole. Nous vous contacterons très prochainement.\n\nCordialement,\nL'équipe Nous'Rire",
		data.Name,
	)
	if err := s.mailer.Send(ctx, data.Email, data.Name, confirmation, data.Email); err != nil {
		return &errors.DeliveryError{Err: err}
	}

	notification := fmt.Sprintf(
		"Nouvelle demande de bénévole :\n\nNom : %s\nEmail : %s\nTéléphone : %s\nMessage : %s",
		data.Name, data.Email, data.Phone, data.Message,
	)
	if err := s.mailer.Send(ctx, s.operatorEmail, "Admin", notification, data.Email); err != nil {
		return &errors.DeliveryError{Err: err}
	}
	return nil
}
