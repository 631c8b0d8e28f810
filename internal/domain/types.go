package domain

type (
	Id    = string
	Email = string

	NewsTitle   = string
	NewsContent = string

	EventTitle    = string
	EventDate     = string // YYYY-MM-DD
	EventTime     = string
	EventLocation = string
)

// NewsRetentionLimit caps the news collection; creating one more evicts
// the oldest post. The value is a product constant, not tunable config.
const NewsRetentionLimit = 3
