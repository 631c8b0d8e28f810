package domain

import "time"

type EventCreationData struct {
	Title    EventTitle
	Date     EventDate
	Time     EventTime
	Location EventLocation
}

// Event is a scheduled food distribution.
type Event struct {
	Id        Id
	Title     EventTitle
	Date      EventDate
	Time      EventTime
	Location  EventLocation
	CreatedAt time.Time
	UpdatedAt *time.Time
}
