package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, session_id, document_id, status, error_code, error_message, overall_score, result, created_at, started_at, completed_at, updated_at`

// Create inserts a new analysis row.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
    id,
    session_id,
    document_id,
    status,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $5)`

	var documentID sql.NullString
	if analysis.DocumentID != "" {
		documentID = sql.NullString{String: analysis.DocumentID, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.SessionID,
		documentID,
		analysis.Status,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns one analysis.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	query := `
SELECT ` + analysisColumns + `
FROM analyses
WHERE id = $1
LIMIT 1`
	return scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
}

// UpdateStatusResultAndError updates the mutable analysis fields.
func (r *PGRepo) UpdateStatusResultAndError(ctx context.Context, analysisID, status string, result map[string]any, overallScore *float64, errorCode, errorMessage *string, startedAt, completedAt *time.Time) error {
	const query = `
UPDATE analyses
SET status = $1,
    result = COALESCE($2, result),
    overall_score = COALESCE($3, overall_score),
    error_code = COALESCE($4, error_code),
    error_message = COALESCE($5, error_message),
    started_at = COALESCE($6, started_at),
    completed_at = COALESCE($7, completed_at),
    updated_at = $8
WHERE id = $9`

	var resultJSON any
	if result != nil {
		raw, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		resultJSON = raw
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		status,
		resultJSON,
		nullFloat(overallScore),
		nullString(errorCode),
		nullString(errorMessage),
		nullTime(startedAt),
		nullTime(completedAt),
		time.Now().UTC(),
		analysisID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListBySession lists analyses ordered newest-first.
func (r *PGRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + analysisColumns + `
FROM analyses
WHERE session_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var analysis Analysis
	var documentID sql.NullString
	var errorCode sql.NullString
	var errorMessage sql.NullString
	var overall sql.NullFloat64
	var resultRaw []byte
	var startedAt sql.NullTime
	var completedAt sql.NullTime

	err := row.Scan(
		&analysis.ID,
		&analysis.SessionID,
		&documentID,
		&analysis.Status,
		&errorCode,
		&errorMessage,
		&overall,
		&resultRaw,
		&analysis.CreatedAt,
		&startedAt,
		&completedAt,
		&analysis.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}

	if documentID.Valid {
		analysis.DocumentID = documentID.String
	}
	if errorCode.Valid {
		analysis.ErrorCode = &errorCode.String
	}
	if errorMessage.Valid {
		analysis.ErrorMessage = &errorMessage.String
	}
	if overall.Valid {
		analysis.OverallScore = &overall.Float64
	}
	if len(resultRaw) > 0 {
		if err := json.Unmarshal(resultRaw, &analysis.Result); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal result: %w", err)
		}
	}
	if startedAt.Valid {
		analysis.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		analysis.CompletedAt = &completedAt.Time
	}
	return analysis, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
