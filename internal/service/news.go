package service

import (
	"strings"

	"github.com/nousrire/backend/internal/domain"
	"github.com/nousrire/backend/internal/errors"
	"github.com/nousrire/backend/internal/logger"
	"github.com/nousrire/backend/internal/service/utils"
)

// to mock service in tests
type NewsService interface {
	List() ([]domain.NewsPost, error)
	Create(data domain.NewsCreationData) (*domain.NewsPost, error)
	Delete(id domain.Id) error
}

type NewsStorage interface {
	CreateNews(title, content string, image *string) (*domain.NewsPost, error)
	// GetNews returns posts newest first.
	GetNews() ([]domain.NewsPost, error)
	// GetOldestNews returns the post with the earliest publishedAt, or a
	// NotFoundError when the collection is empty.
	GetOldestNews() (*domain.NewsPost, error)
	GetNewsItem(id domain.Id) (*domain.NewsPost, error)
	DeleteNews(id domain.Id) error
}

// ImageProcessor is the pipeline feeding the news adapter.
type ImageProcessor interface {
	Process(pending *domain.PendingImage) (*domain.StoredImage, error)
	DeleteStored(url string) error
}

type News struct {
	storage NewsStorage
	images  ImageProcessor
}

func NewNews(storage NewsStorage, images ImageProcessor) NewsService {
	return &News{storage, images}
}

func (n *News) List() ([]domain.NewsPost, error) {
	return n.storage.GetNews()
}

// Create enforces the retention cap before writing: at 3 or more posts
// the oldest is evicted first, its stored image deleted best-effort.
// The evict-then-insert sequence is not transactional; a crash in
// between can leave the collection at 2 posts.
func (n *News) Create(data domain.NewsCreationData) (*domain.NewsPost, error) {
	title := strings.TrimSpace(data.Title)
	if len([]rune(title)) < 3 {
		return nil, &errors.ValidationError{Message: "title must be at least 3 characters"}
	}
	content := strings.TrimSpace(data.Content)
	if len([]rune(content)) < 10 {
		return nil, &errors.ValidationError{Message: "content must be at least 10 characters"}
	}

	title = utils.SanitizeText(title)
	content = utils.SanitizeText(content)

	if err := n.evictIfAtCap(); err != nil {
		return nil, err
	}

	// Pipeline failure degrades to a post without an image rather than
	// failing the whole create.
	var imageURL *string
	if data.Image != nil {
		stored, err := n.images.Process(data.Image)
		if err != nil {
			logger.Log.Warn("image pipeline failed, creating post without image", "error", err)
		} else {
			imageURL = &stored.URL
		}
	}

	return n.storage.CreateNews(title, content, imageURL)
}

// Delete removes the post and best-effort deletes its stored image.
func (n *News) Delete(id domain.Id) error {
	post, err := n.storage.GetNewsItem(id)
	if err != nil {
		return err
	}

	if err := n.storage.DeleteNews(id); err != nil {
		return err
	}

	if post.Image != nil {
		if err := n.images.DeleteStored(*post.Image); err != nil {
			logger.Log.Warn("failed to delete image of removed news post", "id", id, "url", *post.Image, "error", err)
		}
	}
	return nil
}

func (n *News) evictIfAtCap() error {
	posts, err := n.storage.GetNews()
	if err != nil {
		return err
	}
	if len(posts) < domain.NewsRetentionLimit {
		return nil
	}

	oldest, err := n.storage.GetOldestNews()
	if err != nil {
		return err
	}

	if err := n.storage.DeleteNews(oldest.Id); err != nil {
		return err
	}

	if oldest.Image != nil {
		if err := n.images.DeleteStored(*oldest.Image); err != nil {
			logger.Log.Warn("failed to delete image of evicted news post", "id", oldest.Id, "url", *oldest.Image, "error", err)
		}
	}
	return nil
}
