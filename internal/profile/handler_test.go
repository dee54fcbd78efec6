package profile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-score/internal/shared/server/middleware"
)

func newProfileRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Session())
	api := r.Group("/api/v1")
	NewHandler(NewStore(), nil).RegisterRoutes(api)

	return r, uuid.NewString()
}

func profileRequest(t *testing.T, r *gin.Engine, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", sessionID)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestProfileCRUDFlow(t *testing.T) {
	r, sid := newProfileRouter(t)

	resp := profileRequest(t, r, http.MethodPut, "/api/v1/profile/personal-info", sid, gin.H{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = profileRequest(t, r, http.MethodPost, "/api/v1/profile/experience", sid, gin.H{
		"title":       "Engineer",
		"company":     "Acme",
		"location":    "Remote",
		"start_year":  "2021",
		"end_year":    "Present",
		"description": "Led migration",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = profileRequest(t, r, http.MethodPost, "/api/v1/profile/skills", sid, gin.H{"skill": "Go"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = profileRequest(t, r, http.MethodGet, "/api/v1/profile", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var p Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "Jane Doe", p.PersonalInfo.Name)
	assert.Len(t, p.Experience, 1)
	assert.Equal(t, []string{"Go"}, p.Skills)

	resp = profileRequest(t, r, http.MethodDelete, "/api/v1/profile/experience/0", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = profileRequest(t, r, http.MethodDelete, "/api/v1/profile/experience/0", sid, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = profileRequest(t, r, http.MethodDelete, "/api/v1/profile/skills/go", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestProfileExportImportEndpoints(t *testing.T) {
	r, sid := newProfileRouter(t)

	resp := profileRequest(t, r, http.MethodPut, "/api/v1/profile", sid, builtProfile())
	require.Equal(t, http.StatusOK, resp.Code)

	exportResp := profileRequest(t, r, http.MethodGet, "/api/v1/profile/export", sid, nil)
	require.Equal(t, http.StatusOK, exportResp.Code)
	assert.Contains(t, exportResp.Header().Get("Content-Disposition"), "profile.json")
	exported := exportResp.Body.Bytes()

	other := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/import", bytes.NewReader(exported))
	req.Header.Set("X-Session-Id", other)
	importResp := httptest.NewRecorder()
	r.ServeHTTP(importResp, req)
	require.Equal(t, http.StatusOK, importResp.Code)

	a := profileRequest(t, r, http.MethodGet, "/api/v1/profile", sid, nil)
	b := profileRequest(t, r, http.MethodGet, "/api/v1/profile", other, nil)
	assert.JSONEq(t, a.Body.String(), b.Body.String())
}

func TestProfileRenderEndpoint(t *testing.T) {
	r, sid := newProfileRouter(t)

	resp := profileRequest(t, r, http.MethodPut, "/api/v1/profile", sid, builtProfile())
	require.Equal(t, http.StatusOK, resp.Code)

	renderResp := profileRequest(t, r, http.MethodGet, "/api/v1/profile/render", sid, nil)
	require.Equal(t, http.StatusOK, renderResp.Code)
	assert.True(t, strings.HasPrefix(renderResp.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, renderResp.Body.String(), "<h1>John Doe</h1>")
}

func TestProfileAnalyzeEndpoint(t *testing.T) {
	r, sid := newProfileRouter(t)

	resp := profileRequest(t, r, http.MethodPut, "/api/v1/profile", sid, builtProfile())
	require.Equal(t, http.StatusOK, resp.Code)

	analyzeResp := profileRequest(t, r, http.MethodPost, "/api/v1/profile/analyze", sid, nil)
	require.Equal(t, http.StatusOK, analyzeResp.Code)

	var payload struct {
		Scores []struct {
			Category string  `json:"category"`
			Score    float64 `json:"score"`
		} `json:"scores"`
		Overall struct {
			AverageScore float64 `json:"averageScore"`
			Tier         string  `json:"tier"`
		} `json:"overall"`
	}
	require.NoError(t, json.NewDecoder(analyzeResp.Body).Decode(&payload))
	assert.Len(t, payload.Scores, 6)
	assert.Greater(t, payload.Overall.AverageScore, 0.0)
	assert.NotEmpty(t, payload.Overall.Tier)
}

func TestProfileImportRejectsGarbage(t *testing.T) {
	r, sid := newProfileRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/import", strings.NewReader("{broken"))
	req.Header.Set("X-Session-Id", sid)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
