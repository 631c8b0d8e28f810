package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nousrire/backend/internal/api"
	"github.com/nousrire/backend/internal/domain"
	"github.com/nousrire/backend/internal/errors"
	"github.com/nousrire/backend/internal/utils"
	"github.com/nousrire/backend/internal/validation"
)

// multipart memory budget; anything larger spills to temp files
const maxMultipartMemory = 4 << 20

// GetNews serves the public news list, newest first, with the content
// rendered to sanitized HTML for the site.
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	posts, err := h.news.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.NewsListResponse{News: make([]api.NewsResponse, len(posts))}
	for i, post := range posts {
		response.News[i] = api.NewsResponse{
			Id:          post.Id,
			Title:       post.Title,
			Content:     post.Content,
			ContentHTML: h.renderer.Render(post.Content),
			Image:       post.Image,
			PublishedAt: post.PublishedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, response)
}

// CreateNews accepts a multipart form: title, content and an optional
// image file.
func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Body is not a valid multipart form", StatusCode: 400})
		return
	}

	data := domain.NewsCreationData{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		pending, err := validation.ValidateImageUpload(files[0])
		if err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
		if closer, ok := pending.Data.(io.Closer); ok {
			defer closer.Close()
		}
		data.Image = pending
	}

	post, err := h.news.Create(data)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.NewsResponse{
		Id:          post.Id,
		Title:       post.Title,
		Content:     post.Content,
		Image:       post.Image,
		PublishedAt: post.PublishedAt.Format(time.RFC3339),
	})
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.news.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
