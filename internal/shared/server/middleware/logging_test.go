package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-score/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := telemetry.SetOutput(&buf)
	defer telemetry.SetOutput(prev)

	router := gin.New()
	router.Use(RequestID(), Session(), Logging())
	router.GET("/test", func(c *gin.Context) {
		c.Set("documentId", "doc-1")
		c.Set("analysisId", "analysis-1")
		c.Set("statusTransition", "queued->processing")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	sid := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Session-Id", sid)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatalf("expected log output")
	}
	last := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(last), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	required := []string{"request_id", "session_id", "document_id", "analysis_id", "duration_ms", "status", "status_transition"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["session_id"] != sid {
		t.Fatalf("unexpected session_id: %v", payload["session_id"])
	}
	if payload["document_id"] != "doc-1" {
		t.Fatalf("unexpected document_id: %v", payload["document_id"])
	}
	if payload["analysis_id"] != "analysis-1" {
		t.Fatalf("unexpected analysis_id: %v", payload["analysis_id"])
	}
	if payload["status_transition"] != "queued->processing" {
		t.Fatalf("unexpected status_transition: %v", payload["status_transition"])
	}
}
