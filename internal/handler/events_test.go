package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nousrire/backend/internal/api"
	"github.com/nousrire/backend/internal/domain"
	internal_errors "github.com/nousrire/backend/internal/errors"
)

func TestGetEventsHandler(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.events.MockList = func() ([]domain.Event, error) {
		return []domain.Event{
			{Id: "e1", Title: "Distribution", Date: "2025-07-01", Time: "10:00", Location: "Marché couvert"},
			{Id: "e2", Title: "Collecte", Date: "2025-07-15", Time: "14:30", Location: "Place centrale"},
		}, nil
	}

	req := createRequest(t, http.MethodGet, "/v1/events", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var response api.EventListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response.Events, 2)
	assert.Equal(t, "2025-07-01", response.Events[0].Date)
	assert.Equal(t, "Place centrale", response.Events[1].Location)
}

func TestCreateEventHandler(t *testing.T) {
	route := "/v1/admin/events"
	requestBody := []byte(`{"title": "Distribution", "date": "2025-07-01", "time": "10:00", "location": "Marché couvert"}`)

	t.Run("successful request", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.events.MockCreate = func(data domain.EventCreationData) (*domain.Event, error) {
			assert.Equal(t, "2025-07-01", data.Date)
			return &domain.Event{Id: "created", Title: data.Title, Date: data.Date, Time: data.Time, Location: data.Location}, nil
		}

		req := createAdminRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var response api.EventResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "created", response.Id)
		assert.Equal(t, "Distribution", response.Title)
	})

	t.Run("missing fields", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.events.MockCreate = func(data domain.EventCreationData) (*domain.Event, error) {
			t.Fatal("service must not be called")
			return nil, nil
		}

		req := createAdminRequest(t, http.MethodPost, route, []byte(`{"title": "Distribution"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("past date maps to 400", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.events.MockCreate = func(data domain.EventCreationData) (*domain.Event, error) {
			return nil, &internal_errors.ValidationError{Message: "event date cannot be in the past"}
		}

		req := createAdminRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateEventHandler(t *testing.T) {
	requestBody := []byte(`{"title": "Distribution", "date": "2025-08-01", "time": "11:00", "location": "Marché couvert"}`)

	t.Run("successful request", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.events.MockUpdate = func(id domain.Id, data domain.EventCreationData) (*domain.Event, error) {
			assert.Equal(t, "event-3", id)
			return &domain.Event{Id: id, Title: data.Title, Date: data.Date, Time: data.Time, Location: data.Location}, nil
		}

		req := createAdminRequest(t, http.MethodPut, "/v1/admin/events/event-3", requestBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var response api.EventResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "2025-08-01", response.Date)
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.events.MockUpdate = func(id domain.Id, data domain.EventCreationData) (*domain.Event, error) {
			return nil, &internal_errors.NotFoundError{Resource: "event"}
		}

		req := createAdminRequest(t, http.MethodPut, "/v1/admin/events/missing", requestBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteEventHandler(t *testing.T) {
	router, mocks := newTestRouter(t)
	var deleted domain.Id
	mocks.events.MockDelete = func(id domain.Id) error {
		deleted = id
		return nil
	}

	req := createAdminRequest(t, http.MethodDelete, "/v1/admin/events/event-9", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "event-9", deleted)
}
