package documents

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-score/internal/shared/metrics"
	"resume-score/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Upload saves the file to object storage and records the document.
func (s *Service) Upload(ctx context.Context, sessionID, fileName string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, ErrInvalidInput
	}

	fileKey, size, mimeType, err := s.Store.Save(ctx, sessionID, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		FileName:  fileName,
		FileKey:   fileKey,
		MimeType:  mimeType,
		SizeBytes: size,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	metrics.IncDocumentUploaded()
	return doc, nil
}

// Get returns a document by ID scoped to the session.
func (s *Service) Get(ctx context.Context, sessionID, documentID string) (Document, error) {
	if sessionID == "" || documentID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, sessionID, documentID)
}

// Current returns the most recently uploaded document for a session.
func (s *Service) Current(ctx context.Context, sessionID string) (Document, error) {
	if sessionID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetCurrentBySession(ctx, sessionID)
}

// List returns a page of the session's documents, newest first.
func (s *Service) List(ctx context.Context, sessionID string, limit, offset int) ([]Document, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListBySession(ctx, sessionID, limit, offset)
}
