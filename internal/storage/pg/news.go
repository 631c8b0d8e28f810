package pg

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nousrire/backend/internal/domain"
	internal_errors "github.com/nousrire/backend/internal/errors"
)

func (s *Storage) CreateNews(title, content string, image *string) (*domain.NewsPost, error) {
	id := uuid.NewString()
	var publishedAt time.Time
	err := s.db.QueryRow(
		"INSERT INTO news(id, title, content, image) VALUES($1, $2, $3, $4) RETURNING published_at",
		id, title, content, image,
	).Scan(&publishedAt)
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "create news", Err: err}
	}

	return &domain.NewsPost{
		Id:          id,
		Title:       title,
		Content:     content,
		Image:       image,
		PublishedAt: publishedAt,
	}, nil
}

// GetNews returns all posts newest first. The retention cap keeps the
// collection at three, so there is no pagination.
func (s *Storage) GetNews() ([]domain.NewsPost, error) {
	rows, err := s.db.Query(
		"SELECT id, title, content, image, published_at FROM news ORDER BY published_at DESC",
	)
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "list news", Err: err}
	}
	defer rows.Close()

	var posts []domain.NewsPost
	for rows.Next() {
		var post domain.NewsPost
		if err := rows.Scan(&post.Id, &post.Title, &post.Content, &post.Image, &post.PublishedAt); err != nil {
			return nil, &internal_errors.StorageError{Op: "scan news", Err: err}
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, &internal_errors.StorageError{Op: "list news", Err: err}
	}
	return posts, nil
}

func (s *Storage) GetOldestNews() (*domain.NewsPost, error) {
	var post domain.NewsPost
	err := s.db.QueryRow(
		"SELECT id, title, content, image, published_at FROM news ORDER BY published_at ASC LIMIT 1",
	).Scan(&post.Id, &post.Title, &post.Content, &post.Image, &post.PublishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &internal_errors.NotFoundError{Resource: "news post"}
	}
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "get oldest news", Err: err}
	}
	return &post, nil
}

func (s *Storage) GetNewsItem(id domain.Id) (*domain.NewsPost, error) {
	var post domain.NewsPost
	err := s.db.QueryRow(
		"SELECT id, title, content, image, published_at FROM news WHERE id = $1",
		id,
	).Scan(&post.Id, &post.Title, &post.Content, &post.Image, &post.PublishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &internal_errors.NotFoundError{Resource: "news post"}
	}
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "get news", Err: err}
	}
	return &post, nil
}

func (s *Storage) DeleteNews(id domain.Id) error {
	res, err := s.db.Exec("DELETE FROM news WHERE id = $1", id)
	if err != nil {
		return &internal_errors.StorageError{Op: "delete news", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &internal_errors.StorageError{Op: "delete news", Err: err}
	}
	if affected == 0 {
		return &internal_errors.NotFoundError{Resource: "news post"}
	}
	return nil
}
