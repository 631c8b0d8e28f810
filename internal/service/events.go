package service

import (
	"strings"
	"time"

	"github.com/nousrire/backend/internal/domain"
	"github.com/nousrire/backend/internal/errors"
	"github.com/nousrire/backend/internal/service/utils"
)

const eventDateLayout = "2006-01-02"

type EventService interface {
	// List returns only events with date >= today, ascending by date.
	List() ([]domain.Event, error)
	Create(data domain.EventCreationData) (*domain.Event, error)
	Update(id domain.Id, data domain.EventCreationData) (*domain.Event, error)
	Delete(id domain.Id) error
}

type EventStorage interface {
	CreateEvent(data domain.EventCreationData) (*domain.Event, error)
	// GetEvents returns events with date >= since, ascending by date.
	GetEvents(since domain.EventDate) ([]domain.Event, error)
	UpdateEvent(id domain.Id, data domain.EventCreationData) (*domain.Event, error)
	DeleteEvent(id domain.Id) error
}

type Events struct {
	storage EventStorage
	now     func() time.Time
}

func NewEvents(storage EventStorage, now func() time.Time) EventService {
	if now == nil {
		now = time.Now
	}
	return &Events{storage, now}
}

func (e *Events) List() ([]domain.Event, error) {
	return e.storage.GetEvents(e.today())
}

func (e *Events) Create(data domain.EventCreationData) (*domain.Event, error) {
	validated, err := e.validate(data)
	if err != nil {
		return nil, err
	}
	return e.storage.CreateEvent(*validated)
}

// Update replaces all four fields; the date is revalidated exactly as on
// create.
func (e *Events) Update(id domain.Id, data domain.EventCreationData) (*domain.Event, error) {
	validated, err := e.validate(data)
	if err != nil {
		return nil, err
	}
	return e.storage.UpdateEvent(id, *validated)
}

func (e *Events) Delete(id domain.Id) error {
	return e.storage.DeleteEvent(id)
}

// validate applies the boundary rules and rejects past dates against a
// midnight-normalized "today". No write happens on rejection.
func (e *Events) validate(data domain.EventCreationData) (*domain.EventCreationData, error) {
	title := strings.TrimSpace(data.Title)
	if title == "" {
		return nil, &errors.ValidationError{Message: "title must not be empty"}
	}
	if strings.TrimSpace(data.Time) == "" {
		return nil, &errors.ValidationError{Message: "time must not be empty"}
	}
	location := strings.TrimSpace(data.Location)
	if len([]rune(location)) < 3 {
		return nil, &errors.ValidationError{Message: "location must be at least 3 characters"}
	}

	date, err := time.Parse(eventDateLayout, data.Date)
	if err != nil {
		return nil, &errors.ValidationError{Message: "date must be YYYY-MM-DD"}
	}
	if date.Before(e.todayTime()) {
		return nil, &errors.ValidationError{Message: "event date must be today or in the future"}
	}

	return &domain.EventCreationData{
		Title:    utils.SanitizeText(title),
		Date:     data.Date,
		Time:     utils.SanitizeText(data.Time),
		Location: utils.SanitizeText(location),
	}, nil
}

func (e *Events) todayTime() time.Time {
	now := e.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (e *Events) today() domain.EventDate {
	return e.todayTime().Format(eventDateLayout)
}
