package documents

import (
	"context"
	"time"
)

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, sessionID, documentID string) (Document, error)
	GetCurrentBySession(ctx context.Context, sessionID string) (Document, error)
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Document, error)
	UpdateExtraction(ctx context.Context, sessionID, documentID, extractedKey string, extractedAt time.Time) error
}
