package documents

import "time"

// Document represents an uploaded document owned by a session.
type Document struct {
	ID               string
	SessionID        string
	FileName         string
	FileKey          string
	MimeType         string
	SizeBytes        int64
	ExtractedTextKey string
	ExtractedAt      *time.Time
	CreatedAt        time.Time
}
