package analyses

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu        sync.RWMutex
	byID      map[string]Analysis
	bySession map[string][]string // sessionID -> analysis IDs in insert order
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:      make(map[string]Analysis),
		bySession: make(map[string][]string),
	}
}

// Create stores the analysis.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[analysis.ID] = analysis
	r.bySession[analysis.SessionID] = append(r.bySession[analysis.SessionID], analysis.ID)
	return nil
}

// GetByID returns an analysis by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// UpdateStatusResultAndError updates status, result, and error fields,
// stamping started/completed times when the caller leaves them nil.
func (r *MemoryRepo) UpdateStatusResultAndError(ctx context.Context, analysisID, status string, result map[string]any, overallScore *float64, errorCode, errorMessage *string, startedAt, completedAt *time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return ErrNotFound
	}
	analysis.Status = status
	if result != nil {
		analysis.Result = result
	}
	if overallScore != nil {
		analysis.OverallScore = overallScore
	}
	if errorCode != nil {
		analysis.ErrorCode = errorCode
	}
	if errorMessage != nil {
		analysis.ErrorMessage = errorMessage
	}
	if startedAt != nil {
		analysis.StartedAt = startedAt
	} else if status == StatusProcessing && analysis.StartedAt == nil {
		now := time.Now().UTC()
		analysis.StartedAt = &now
	}
	if completedAt != nil {
		analysis.CompletedAt = completedAt
	} else if (status == StatusCompleted || status == StatusFailed) && analysis.CompletedAt == nil {
		now := time.Now().UTC()
		analysis.CompletedAt = &now
	}
	analysis.UpdatedAt = time.Now().UTC()
	r.byID[analysisID] = analysis
	return nil
}

// ListBySession returns analyses for a session, newest first, with limit/offset.
func (r *MemoryRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Analysis, error) {
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
	ids := r.bySession[sessionID]
	out := make([]Analysis, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	r.mu.RUnlock()

	if len(out) == 0 || offset >= len(out) {
		return []Analysis{}, nil
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
