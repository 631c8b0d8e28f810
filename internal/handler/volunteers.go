package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nousrire/backend/internal/api"
	"github.com/nousrire/backend/internal/domain"
	"github.com/nousrire/backend/internal/utils"
)

// SubmitVolunteer is the public volunteer-interest endpoint. 202 means
// the notification emails were delivered; the record itself may still be
// catching up (see the submission flow's persistence policy).
func (h *Handler) SubmitVolunteer(w http.ResponseWriter, r *http.Request) {
	var body api.VolunteerRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err := h.submission.Submit(r.Context(), domain.VolunteerCreationData{
		Name:         body.Name,
		Email:        body.Email,
		Phone:        body.Phone,
		Message:      body.Message,
		Distribution: body.Distribution,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) GetVolunteers(w http.ResponseWriter, r *http.Request) {
	volunteers, err := h.volunteers.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.VolunteerListResponse{Volunteers: make([]api.VolunteerResponse, len(volunteers))}
	for i, v := range volunteers {
		response.Volunteers[i] = api.VolunteerResponse{
			Id:           v.Id,
			Name:         v.Name,
			Email:        v.Email,
			Phone:        v.Phone,
			Message:      v.Message,
			Distribution: v.Distribution,
			SubmittedAt:  v.SubmittedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, response)
}

func (h *Handler) DeleteVolunteer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.volunteers.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
