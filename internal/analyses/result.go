package analyses

import (
	"encoding/json"
	"fmt"

	"resume-score/internal/engine"
)

// resultFromAssessment converts an assessment into the persisted result
// shape. Going through JSON keeps the stored form identical to what the
// API serves.
func resultFromAssessment(a engine.Assessment) (map[string]any, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal assessment: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal assessment: %w", err)
	}
	return out, nil
}

// assessmentFromResult reverses resultFromAssessment for report rendering.
func assessmentFromResult(result map[string]any) (engine.Assessment, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return engine.Assessment{}, fmt.Errorf("marshal result: %w", err)
	}
	var a engine.Assessment
	if err := json.Unmarshal(raw, &a); err != nil {
		return engine.Assessment{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return a, nil
}
