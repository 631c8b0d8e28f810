package service

import "github.com/nousrire/backend/internal/domain"

// VolunteerService is the admin-side adapter: list and delete only.
// Creation goes through the public submission flow so its validation
// stays in one place.
type VolunteerService interface {
	List() ([]domain.VolunteerSubmission, error)
	Delete(id domain.Id) error
}

type VolunteerStorage interface {
	CreateVolunteer(data domain.VolunteerCreationData) (*domain.VolunteerSubmission, error)
	// GetVolunteers returns submissions in storage order; callers must
	// not depend on it.
	GetVolunteers() ([]domain.VolunteerSubmission, error)
	DeleteVolunteer(id domain.Id) error
}

type Volunteers struct {
	storage VolunteerStorage
}

func NewVolunteers(storage VolunteerStorage) VolunteerService {
	return &Volunteers{storage}
}

func (v *Volunteers) List() ([]domain.VolunteerSubmission, error) {
	return v.storage.GetVolunteers()
}

func (v *Volunteers) Delete(id domain.Id) error {
	return v.storage.DeleteVolunteer(id)
}
