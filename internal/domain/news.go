package domain

import (
	"io"
	"time"
)

// to iterate thru layers: handler -> service -> storage
type NewsCreationData struct {
	Title   NewsTitle
	Content NewsContent
	Image   *PendingImage // nil when the post ships without one
}

type NewsPost struct {
	Id          Id
	Title       NewsTitle
	Content     NewsContent
	Image       *string // durable URL, nil if none
	PublishedAt time.Time
}

// PendingImage is an upload that passed MIME/size validation but has not
// been compressed or stored yet.
type PendingImage struct {
	Filename  string
	MimeType  string
	SizeBytes int64
	Data      io.Reader
}

// StoredImage is the pipeline output: compressed bytes already written to
// the object store, addressable by URL.
type StoredImage struct {
	URL       string
	MimeType  string
	SizeBytes int64
}
