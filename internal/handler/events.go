package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nousrire/backend/internal/api"
	"github.com/nousrire/backend/internal/domain"
	"github.com/nousrire/backend/internal/utils"
)

// GetEvents serves upcoming distributions, ascending by date. Past
// events never appear.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.EventListResponse{Events: make([]api.EventResponse, len(events))}
	for i, event := range events {
		response.Events[i] = api.NewEventResponse(event)
	}
	writeJSON(w, response)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var body api.CreateEventRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	event, err := h.events.Create(domain.EventCreationData{
		Title:    body.Title,
		Date:     body.Date,
		Time:     body.Time,
		Location: body.Location,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.NewEventResponse(*event))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body api.UpdateEventRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	event, err := h.events.Update(id, domain.EventCreationData{
		Title:    body.Title,
		Date:     body.Date,
		Time:     body.Time,
		Location: body.Location,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewEventResponse(*event))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.events.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
