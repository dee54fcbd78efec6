package documents

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Document // sessionID -> documents
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Document),
	}
}

// Create appends a document to the session's history.
func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.SessionID] = append(r.data[doc.SessionID], doc)
	return nil
}

// GetCurrentBySession returns the most recently uploaded document.
func (r *MemoryRepo) GetCurrentBySession(ctx context.Context, sessionID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs, ok := r.data[sessionID]
	if !ok || len(docs) == 0 {
		return Document{}, ErrNotFound
	}
	return docs[len(docs)-1], nil
}

// GetByID returns a document by ID scoped to a session.
func (r *MemoryRepo) GetByID(ctx context.Context, sessionID, documentID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs := r.data[sessionID]
	for i := range docs {
		if docs[i].ID == documentID {
			return docs[i], nil
		}
	}
	return Document{}, ErrNotFound
}

// UpdateExtraction stores the extracted text metadata for a document.
// Extraction results are written once; later calls are no-ops.
func (r *MemoryRepo) UpdateExtraction(ctx context.Context, sessionID, documentID, extractedKey string, extractedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	docs := r.data[sessionID]
	for i := range docs {
		if docs[i].ID == documentID {
			if docs[i].ExtractedTextKey == "" {
				docs[i].ExtractedTextKey = extractedKey
				docs[i].ExtractedAt = &extractedAt
				r.data[sessionID] = docs
			}
			return nil
		}
	}
	return ErrNotFound
}

// ListBySession returns documents for a session, newest first, honoring limit/offset.
func (r *MemoryRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	sessionDocs := r.data[sessionID]
	r.mu.RUnlock()

	if len(sessionDocs) == 0 || offset >= len(sessionDocs) {
		return []Document{}, nil
	}

	// Insertion order is creation order; reverse it for newest-first.
	docs := make([]Document, 0, len(sessionDocs))
	for i := len(sessionDocs) - 1; i >= 0; i-- {
		docs = append(docs, sessionDocs[i])
	}

	end := len(docs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return docs[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
