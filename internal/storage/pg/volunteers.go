package pg

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nousrire/backend/internal/domain"
	internal_errors "github.com/nousrire/backend/internal/errors"
)

func (s *Storage) CreateVolunteer(data domain.VolunteerCreationData) (*domain.VolunteerSubmission, error) {
	id := uuid.NewString()
	var distribution sql.NullString
	if data.Distribution != "" {
		distribution = sql.NullString{String: data.Distribution, Valid: true}
	}

	var submittedAt time.Time
	err := s.db.QueryRow(
		"INSERT INTO volunteers(id, name, email, phone, message, distribution) VALUES($1, $2, $3, $4, $5, $6) RETURNING submitted_at",
		id, data.Name, data.Email, data.Phone, data.Message, distribution,
	).Scan(&submittedAt)
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "create volunteer", Err: err}
	}

	return &domain.VolunteerSubmission{
		Id:           id,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		Message:      data.Message,
		Distribution: data.Distribution,
		SubmittedAt:  submittedAt,
	}, nil
}

func (s *Storage) GetVolunteers() ([]domain.VolunteerSubmission, error) {
	rows, err := s.db.Query(
		"SELECT id, name, email, phone, message, distribution, submitted_at FROM volunteers",
	)
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "list volunteers", Err: err}
	}
	defer rows.Close()

	var volunteers []domain.VolunteerSubmission
	for rows.Next() {
		var v domain.VolunteerSubmission
		var distribution sql.NullString
		if err := rows.Scan(&v.Id, &v.Name, &v.Email, &v.Phone, &v.Message, &distribution, &v.SubmittedAt); err != nil {
			return nil, &internal_errors.StorageError{Op: "scan volunteer", Err: err}
		}
		if distribution.Valid {
			v.Distribution = distribution.String
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &internal_errors.StorageError{Op: "list volunteers", Err: err}
	}
	return volunteers, nil
}

func (s *Storage) DeleteVolunteer(id domain.Id) error {
	res, err := s.db.Exec("DELETE FROM volunteers WHERE id = $1", id)
	if err != nil {
		return &internal_errors.StorageError{Op: "delete volunteer", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &internal_errors.StorageError{Op: "delete volunteer", Err: err}
	}
	if affected == 0 {
		return &internal_errors.NotFoundError{Resource: "volunteer submission"}
	}
	return nil
}

// Markers implement the 24h duplicate-submission window, keyed by email.

func (s *Storage) GetMarker(email domain.Email) (*domain.SubmissionMarker, error) {
	var marker domain.SubmissionMarker
	err := s.db.QueryRow(
		"SELECT email, created_at, expires_at FROM volunteer_submissions WHERE email = $1",
		email,
	).Scan(&marker.Email, &marker.CreatedAt, &marker.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &internal_errors.NotFoundError{Resource: "submission marker"}
	}
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "get marker", Err: err}
	}
	return &marker, nil
}

func (s *Storage) PutMarker(marker domain.SubmissionMarker) error {
	_, err := s.db.Exec(
		`INSERT INTO volunteer_submissions(email, created_at, expires_at) VALUES($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at`,
		marker.Email, marker.CreatedAt, marker.ExpiresAt,
	)
	if err != nil {
		return &internal_errors.StorageError{Op: "put marker", Err: err}
	}
	return nil
}

func (s *Storage) VoidMarker(email domain.Email) error {
	_, err := s.db.Exec("DELETE FROM volunteer_submissions WHERE email = $1", email)
	if err != nil {
		return &internal_errors.StorageError{Op: "void marker", Err: err}
	}
	return nil
}
