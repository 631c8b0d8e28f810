package handler

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nousrire/backend/internal/domain"
	"github.com/nousrire/backend/internal/markdown"
	"github.com/nousrire/backend/internal/middleware"
)

type MockAuthService struct {
	MockAuthenticate func(email, password string) (string, error)
}

func (m *MockAuthService) Authenticate(email, password string) (string, error) {
	if m.MockAuthenticate != nil {
		return m.MockAuthenticate(email, password)
	}
	return "", nil // Default behavior
}

type MockNewsService struct {
	MockList   func() ([]domain.NewsPost, error)
	MockCreate func(data domain.NewsCreationData) (*domain.NewsPost, error)
	MockDelete func(id domain.Id) error
}

func (m *MockNewsService) List() ([]domain.NewsPost, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return nil, nil // Default behavior
}

func (m *MockNewsService) Create(data domain.NewsCreationData) (*domain.NewsPost, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return &domain.NewsPost{}, nil // Default behavior
}

func (m *MockNewsService) Delete(id domain.Id) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil // Default behavior
}

type MockEventService struct {
	MockList   func() ([]domain.Event, error)
	MockCreate func(data domain.EventCreationData) (*domain.Event, error)
	MockUpdate func(id domain.Id, data domain.EventCreationData) (*domain.Event, error)
	MockDelete func(id domain.Id) error
}

func (m *MockEventService) List() ([]domain.Event, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return nil, nil
}

func (m *MockEventService) Create(data domain.EventCreationData) (*domain.Event, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return &domain.Event{}, nil
}

func (m *MockEventService) Update(id domain.Id, data domain.EventCreationData) (*domain.Event, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, data)
	}
	return &domain.Event{}, nil
}

func (m *MockEventService) Delete(id domain.Id) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockVolunteerService struct {
	MockList   func() ([]domain.VolunteerSubmission, error)
	MockDelete func(id domain.Id) error
}

func (m *MockVolunteerService) List() ([]domain.VolunteerSubmission, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return nil, nil
}

func (m *MockVolunteerService) Delete(id domain.Id) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockSubmissionService struct {
	MockSubmit func(ctx context.Context, data domain.VolunteerCreationData) error
}

func (m *MockSubmissionService) Submit(ctx context.Context, data domain.VolunteerCreationData) error {
	if m.MockSubmit != nil {
		return m.MockSubmit(ctx, data)
	}
	return nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.err }

type testMocks struct {
	auth       *MockAuthService
	news       *MockNewsService
	events     *MockEventService
	volunteers *MockVolunteerService
	submission *MockSubmissionService
	pinger     *mockPinger
}

// newTestRouter wires a handler with fresh mocks on the same route layout
// the real router uses, including the session gate on the admin surface.
func newTestRouter(t *testing.T) (*chi.Mux, *testMocks) {
	t.Helper()

	mocks := &testMocks{
		auth:       &MockAuthService{},
		news:       &MockNewsService{},
		events:     &MockEventService{},
		volunteers: &MockVolunteerService{},
		submission: &MockSubmissionService{},
		pinger:     &mockPinger{},
	}
	session := middleware.NewSession(false)
	h := New(mocks.auth, mocks.news, mocks.events, mocks.volunteers, mocks.submission, session, markdown.New(), mocks.pinger)

	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/news", h.GetNews)
		r.Get("/events", h.GetEvents)
		r.Post("/volunteers", h.SubmitVolunteer)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)

			r.Group(func(r chi.Router) {
				r.Use(session.AdminOnly())
				r.Post("/news", h.CreateNews)
				r.Delete("/news/{id}", h.DeleteNews)
				r.Post("/events", h.CreateEvent)
				r.Put("/events/{id}", h.UpdateEvent)
				r.Delete("/events/{id}", h.DeleteEvent)
				r.Get("/volunteers", h.GetVolunteers)
				r.Delete("/volunteers/{id}", h.DeleteVolunteer)
			})
		})
	})
	return r, mocks
}

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	return req
}

// createAdminRequest attaches the session marker cookie.
func createAdminRequest(t *testing.T, method, url string, body []byte) *http.Request {
	req := createRequest(t, method, url, body)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "marker"})
	return req
}
