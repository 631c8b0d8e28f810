package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nousrire/backend/internal/markdown"
	"github.com/nousrire/backend/internal/middleware"
	"github.com/nousrire/backend/internal/service"
)

type Handler struct {
	auth       service.AuthService
	news       service.NewsService
	events     service.EventService
	volunteers service.VolunteerService
	submission service.SubmissionService
	session    *middleware.Session
	renderer   *markdown.TextProcessor
	health     Pinger
}

func New(
	auth service.AuthService,
	news service.NewsService,
	events service.EventService,
	volunteers service.VolunteerService,
	submission service.SubmissionService,
	session *middleware.Session,
	renderer *markdown.TextProcessor,
	health Pinger,
) *Handler {
	return &Handler{auth, news, events, volunteers, submission, session, renderer, health}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Print(err.Error())
	}
}
