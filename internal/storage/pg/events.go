package pg

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nousrire/backend/internal/domain"
	internal_errors "github.com/nousrire/backend/internal/errors"
)

const eventDateLayout = "2006-01-02"

func (s *Storage) CreateEvent(data domain.EventCreationData) (*domain.Event, error) {
	id := uuid.NewString()
	var createdAt time.Time
	err := s.db.QueryRow(
		"INSERT INTO events(id, title, date, time, location) VALUES($1, $2, $3, $4, $5) RETURNING created_at",
		id, data.Title, data.Date, data.Time, data.Location,
	).Scan(&createdAt)
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "create event", Err: err}
	}

	return &domain.Event{
		Id:        id,
		Title:     data.Title,
		Date:      data.Date,
		Time:      data.Time,
		Location:  data.Location,
		CreatedAt: createdAt,
	}, nil
}

func (s *Storage) GetEvents(since domain.EventDate) ([]domain.Event, error) {
	rows, err := s.db.Query(
		"SELECT id, title, date, time, location, created_at, updated_at FROM events WHERE date >= $1 ORDER BY date ASC",
		since,
	)
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "list events", Err: err}
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, &internal_errors.StorageError{Op: "list events", Err: err}
	}
	return events, nil
}

func (s *Storage) UpdateEvent(id domain.Id, data domain.EventCreationData) (*domain.Event, error) {
	var createdAt, updatedAt time.Time
	err := s.db.QueryRow(
		"UPDATE events SET title = $2, date = $3, time = $4, location = $5, updated_at = now() WHERE id = $1 RETURNING created_at, updated_at",
		id, data.Title, data.Date, data.Time, data.Location,
	).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &internal_errors.NotFoundError{Resource: "event"}
	}
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "update event", Err: err}
	}

	return &domain.Event{
		Id:        id,
		Title:     data.Title,
		Date:      data.Date,
		Time:      data.Time,
		Location:  data.Location,
		CreatedAt: createdAt,
		UpdatedAt: &updatedAt,
	}, nil
}

func (s *Storage) DeleteEvent(id domain.Id) error {
	res, err := s.db.Exec("DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return &internal_errors.StorageError{Op: "delete event", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &internal_errors.StorageError{Op: "delete event", Err: err}
	}
	if affected == 0 {
		return &internal_errors.NotFoundError{Resource: "event"}
	}
	return nil
}

func scanEvent(rows *sql.Rows) (*domain.Event, error) {
	var event domain.Event
	var date time.Time
	var updatedAt sql.NullTime
	if err := rows.Scan(&event.Id, &event.Title, &date, &event.Time, &event.Location, &event.CreatedAt, &updatedAt); err != nil {
		return nil, &internal_errors.StorageError{Op: "scan event", Err: err}
	}
	event.Date = date.Format(eventDateLayout)
	if updatedAt.Valid {
		event.UpdatedAt = &updatedAt.Time
	}
	return &event, nil
}
