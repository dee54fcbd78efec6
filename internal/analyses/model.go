package analyses

import "time"

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Analysis represents one scoring job over a document or raw text.
type Analysis struct {
	ID           string         `json:"id"`
	SessionID    string         `json:"sessionId"`
	DocumentID   string         `json:"documentId,omitempty"`
	Status       string         `json:"status"`
	ErrorCode    *string        `json:"errorCode,omitempty"`
	ErrorMessage *string        `json:"errorMessage,omitempty"`
	OverallScore *float64       `json:"overallScore,omitempty"`
	Result       map[string]any `json:"result,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	StartedAt    *time.Time     `json:"startedAt,omitempty"`
	CompletedAt  *time.Time     `json:"completedAt,omitempty"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
