package api

import "github.com/nousrire/backend/internal/domain"

// Request DTOs. Field-level constraints beyond presence (length floors,
// date-not-in-past, phone shape) live in the service layer.

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateEventRequest struct {
	Title    string `json:"title" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type UpdateEventRequest struct {
	Title    string `json:"title" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type VolunteerRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Message      string `json:"message"`
	Distribution string `json:"distribution"`
}

// Response DTOs

type NewsResponse struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	ContentHTML string  `json:"contentHtml,omitempty"`
	Image       *string `json:"image"`
	PublishedAt string  `json:"publishedAt"`
}

type NewsListResponse struct {
	News []NewsResponse `json:"news"`
}

type EventResponse struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

type VolunteerResponse struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Message      string `json:"message,omitempty"`
	Distribution string `json:"distribution,omitempty"`
	SubmittedAt  string `json:"submittedAt"`
}

type VolunteerListResponse struct {
	Volunteers []VolunteerResponse `json:"volunteers"`
}

func NewEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		Id:       e.Id,
		Title:    e.Title,
		Date:     e.Date,
		Time:     e.Time,
		Location: e.Location,
	}
}
