package domain

import "time"

type VolunteerCreationData struct {
	Name         string
	Email        Email
	Phone        string
	Message      string
	Distribution Id // optional reference to an Event
}

type VolunteerSubmission struct {
	Id           Id
	Name         string
	Email        Email
	Phone        string
	Message      string
	Distribution Id
	SubmittedAt  time.Time
}

// SubmissionMarker approximates "one submission per email per 24h".
// Advisory only: there is no uniqueness constraint on the submissions
// themselves.
type SubmissionMarker struct {
	Email     Email
	CreatedAt time.Time
	ExpiresAt time.Time
}

// MarkerTTL is the duplicate-submission window.
const MarkerTTL = 24 * time.Hour

func (m *SubmissionMarker) Expired(now time.Time) bool {
	return !now.Before(m.ExpiresAt)
}
