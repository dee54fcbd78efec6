package analyses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-score/internal/documents"
	"resume-score/internal/engine"
	"resume-score/internal/extract"
	"resume-score/internal/shared/metrics"
	"resume-score/internal/shared/storage/object"
	"resume-score/internal/shared/telemetry"
)

// Service contains business logic for analyses.
type Service struct {
	Repo    Repo
	DocRepo documents.Repo
	Store   object.ObjectStore
	Engine  *engine.Engine
}

// Create enqueues a new analysis for a document and kicks off
// asynchronous completion.
func (s *Service) Create(ctx context.Context, sessionID, documentID string) (Analysis, error) {
	if sessionID == "" || documentID == "" {
		return Analysis{}, ErrInvalidInput
	}

	analysis := Analysis{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		DocumentID: documentID,
		Status:     StatusQueued,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	go s.completeAsync(backgroundWithRequestID(ctx), analysis.ID)

	return analysis, nil
}

// AnalyzeText scores raw text synchronously and records the completed
// analysis so it shows up in the session's history.
func (s *Service) AnalyzeText(ctx context.Context, sessionID, text string) (Analysis, error) {
	if sessionID == "" {
		return Analysis{}, ErrInvalidInput
	}

	analysis := Analysis{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Status:    StatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	startedAt := time.Now().UTC()
	metrics.IncScoringStarted()

	assessment := s.scoringEngine().Analyze(ctx, text)
	result, err := resultFromAssessment(assessment)
	if err != nil {
		s.failAnalysis(ctx, analysis.ID, sessionID, "", err, &startedAt)
		return s.Repo.GetByID(ctx, analysis.ID)
	}

	completedAt := time.Now().UTC()
	overall := assessment.Overall.AverageScore
	if err := s.Repo.UpdateStatusResultAndError(ctx, analysis.ID, StatusCompleted, result, &overall, nil, nil, &startedAt, &completedAt); err != nil {
		return Analysis{}, err
	}
	metrics.IncScoringCompleted()
	metrics.ObserveScoringDurationMs(durationMs(&startedAt, &completedAt))

	return s.Repo.GetByID(ctx, analysis.ID)
}

// Get returns an analysis by ID, scoped to the owning session.
func (s *Service) Get(ctx context.Context, sessionID, analysisID string) (Analysis, error) {
	if sessionID == "" || analysisID == "" {
		return Analysis{}, ErrInvalidInput
	}
	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return Analysis{}, err
	}
	if analysis.SessionID != sessionID {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// List returns analyses for a session ordered newest-first.
func (s *Service) List(ctx context.Context, sessionID string, limit, offset int) ([]Analysis, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListBySession(ctx, sessionID, limit, offset)
}

// Report renders the plain-text report for a completed analysis.
func (s *Service) Report(ctx context.Context, sessionID, analysisID string) (string, error) {
	analysis, err := s.Get(ctx, sessionID, analysisID)
	if err != nil {
		return "", err
	}
	if analysis.Status != StatusCompleted || analysis.Result == nil {
		return "", fmt.Errorf("%w: analysis is %s", ErrInvalidInput, analysis.Status)
	}
	assessment, err := assessmentFromResult(analysis.Result)
	if err != nil {
		return "", err
	}
	generatedAt := time.Now().UTC()
	if analysis.CompletedAt != nil {
		generatedAt = *analysis.CompletedAt
	}
	return engine.RenderReport(assessment, generatedAt), nil
}

func (s *Service) scoringEngine() *engine.Engine {
	if s.Engine != nil {
		return s.Engine
	}
	return engine.New(nil, nil)
}

func (s *Service) completeAsync(ctx context.Context, analysisID string) {
	defer func() {
		if r := recover(); r != nil {
			s.failAnalysis(ctx, analysisID, "", "", fmt.Errorf("panic: %v", r), nil)
		}
	}()
	startedAt := time.Now().UTC()
	if err := s.Repo.UpdateStatusResultAndError(ctx, analysisID, StatusProcessing, nil, nil, nil, nil, &startedAt, nil); err != nil {
		s.failAnalysis(ctx, analysisID, "", "", fmt.Errorf("set processing failed: %w", err), &startedAt)
		return
	}

	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, "", "", fmt.Errorf("analysis lookup: %w", err), &startedAt)
		return
	}
	metrics.IncScoringStarted()
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"session_id":        analysis.SessionID,
		"document_id":       analysis.DocumentID,
		"analysis_id":       analysis.ID,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})
	if s.DocRepo == nil || s.Store == nil {
		s.failAnalysis(ctx, analysisID, analysis.SessionID, analysis.DocumentID, errors.New("missing document store dependencies"), &startedAt)
		return
	}

	doc, err := s.DocRepo.GetByID(ctx, analysis.SessionID, analysis.DocumentID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.SessionID, analysis.DocumentID, fmt.Errorf("document lookup id=%s: %w", analysis.DocumentID, err), &startedAt)
		return
	}

	extractedKey := doc.ExtractedTextKey
	if extractedKey == "" {
		if _, err := extract.ExtractText(ctx, s.Store, doc.FileKey, doc.MimeType, doc.FileName); err != nil {
			s.failAnalysis(ctx, analysisID, analysis.SessionID, analysis.DocumentID, fmt.Errorf("extract document %s mime %s: %w", doc.ID, doc.MimeType, err), &startedAt)
			return
		}
		extractedKey = doc.FileKey + ".extracted.txt"
		if err := s.DocRepo.UpdateExtraction(ctx, doc.SessionID, doc.ID, extractedKey, time.Now().UTC()); err != nil {
			s.failAnalysis(ctx, analysisID, analysis.SessionID, analysis.DocumentID, fmt.Errorf("document %s: update extraction: %w", doc.ID, err), &startedAt)
			return
		}
	}

	text, err := loadText(ctx, s.Store, extractedKey)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.SessionID, analysis.DocumentID, fmt.Errorf("document %s: load extracted text: %w", doc.ID, err), &startedAt)
		return
	}

	assessment := s.scoringEngine().Analyze(ctx, text)
	result, err := resultFromAssessment(assessment)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.SessionID, analysis.DocumentID, err, &startedAt)
		return
	}

	completedAt := time.Now().UTC()
	overall := assessment.Overall.AverageScore
	if err := s.Repo.UpdateStatusResultAndError(ctx, analysisID, StatusCompleted, result, &overall, nil, nil, nil, &completedAt); err != nil {
		s.failAnalysis(ctx, analysisID, analysis.SessionID, analysis.DocumentID, fmt.Errorf("set analysis result failed: %w", err), &startedAt)
		return
	}
	metrics.IncScoringCompleted()
	metrics.ObserveScoringDurationMs(durationMs(&startedAt, &completedAt))
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"session_id":        analysis.SessionID,
		"document_id":       analysis.DocumentID,
		"analysis_id":       analysis.ID,
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
		"duration_ms":       durationMs(&startedAt, &completedAt),
		"overall_score":     overall,
	})
}

func (s *Service) failAnalysis(ctx context.Context, analysisID, sessionID, documentID string, err error, startedAt *time.Time) {
	code := classifyFailure(err)
	msg := sanitizeError(err)
	completedAt := time.Now().UTC()
	if updateErr := s.Repo.UpdateStatusResultAndError(context.Background(), analysisID, StatusFailed, nil, nil, &code, &msg, nil, &completedAt); updateErr != nil {
		telemetry.Error("analysis.fail_update", map[string]any{
			"analysis_id": analysisID,
			"error":       updateErr.Error(),
			"original":    msg,
		})
	}
	metrics.IncScoringFailed()
	if startedAt != nil {
		metrics.ObserveScoringDurationMs(durationMs(startedAt, &completedAt))
	}
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"session_id":        sessionID,
		"document_id":       documentID,
		"analysis_id":       analysisID,
		"status":            StatusFailed,
		"status_transition": "processing->failed",
		"error_code":        code,
		"duration_ms":       durationMs(startedAt, &completedAt),
	})
}

func durationMs(startedAt, completedAt *time.Time) float64 {
	if startedAt == nil || completedAt == nil {
		return 0
	}
	return float64(completedAt.Sub(*startedAt).Microseconds()) / 1000.0
}

func classifyFailure(err error) string {
	if err == nil {
		return ErrorCodeInternal
	}
	if errors.Is(err, extract.ErrUnsupportedType) {
		return ErrorCodeExtraction
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "extract"):
		return ErrorCodeExtraction
	case strings.Contains(msg, "document"),
		strings.Contains(msg, "storage"),
		strings.Contains(msg, "analysis result"),
		strings.Contains(msg, "set processing"):
		return ErrorCodeStorage
	case strings.Contains(msg, "invalid input"):
		return ErrorCodeValidation
	default:
		return ErrorCodeInternal
	}
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}

func loadText(ctx context.Context, store object.ObjectStore, key string) (string, error) {
	body, err := store.Open(ctx, key)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
