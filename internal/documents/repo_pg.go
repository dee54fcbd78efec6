package documents

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    session_id,
    file_name,
    file_key,
    mime_type,
    size_bytes,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.SessionID,
		doc.FileName,
		doc.FileKey,
		doc.MimeType,
		doc.SizeBytes,
		doc.CreatedAt,
	)
	return err
}

// GetCurrentBySession returns the latest document for a session.
func (r *PGRepo) GetCurrentBySession(ctx context.Context, sessionID string) (Document, error) {
	const query = `
SELECT id, session_id, file_name, file_key, mime_type, size_bytes, extracted_text_key, extracted_at, created_at
FROM documents
WHERE session_id = $1
ORDER BY created_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, sessionID))
}

// GetByID fetches a document by ID scoped to a session.
func (r *PGRepo) GetByID(ctx context.Context, sessionID, documentID string) (Document, error) {
	const query = `
SELECT id, session_id, file_name, file_key, mime_type, size_bytes, extracted_text_key, extracted_at, created_at
FROM documents
WHERE session_id = $1 AND id = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, sessionID, documentID))
}

// ListBySession lists documents ordered newest-first.
func (r *PGRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, session_id, file_name, file_key, mime_type, size_bytes, extracted_text_key, extracted_at, created_at
FROM documents
WHERE session_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		var extractedKey sql.NullString
		var extractedAt sql.NullTime
		if err := rows.Scan(
			&doc.ID,
			&doc.SessionID,
			&doc.FileName,
			&doc.FileKey,
			&doc.MimeType,
			&doc.SizeBytes,
			&extractedKey,
			&extractedAt,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		if extractedKey.Valid {
			doc.ExtractedTextKey = extractedKey.String
		}
		if extractedAt.Valid {
			doc.ExtractedAt = &extractedAt.Time
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// UpdateExtraction stores the extracted text metadata for a document.
// The WHERE clause keeps the first extraction; repeat runs are no-ops.
func (r *PGRepo) UpdateExtraction(ctx context.Context, sessionID, documentID, extractedKey string, extractedAt time.Time) error {
	const query = `
UPDATE documents
SET extracted_text_key = $1, extracted_at = $2
WHERE session_id = $3 AND id = $4 AND extracted_text_key IS NULL`
	_, err := r.DB.ExecContext(ctx, query, extractedKey, extractedAt, sessionID, documentID)
	return err
}

func (r *PGRepo) scanOne(row *sql.Row) (Document, error) {
	var doc Document
	var extractedKey sql.NullString
	var extractedAt sql.NullTime
	err := row.Scan(
		&doc.ID,
		&doc.SessionID,
		&doc.FileName,
		&doc.FileKey,
		&doc.MimeType,
		&doc.SizeBytes,
		&extractedKey,
		&extractedAt,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if extractedKey.Valid {
		doc.ExtractedTextKey = extractedKey.String
	}
	if extractedAt.Valid {
		doc.ExtractedAt = &extractedAt.Time
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
