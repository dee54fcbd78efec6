package analyses

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-score/internal/documents"
	"resume-score/internal/shared/server/middleware"
	"resume-score/internal/shared/server/respond"
)

const maxTextLength = 1 << 20 // 1MB of raw text

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc     *Service
	DocRepo documents.Repo
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, docRepo documents.Repo) *Handler {
	return &Handler{Svc: svc, DocRepo: docRepo}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:id/analyze", h.startAnalysis)
	rg.POST("/analyses/text", h.analyzeText)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.GET("/analyses/:id/report", h.getReport)
}

func (h *Handler) startAnalysis(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	documentID := c.Param("id")
	if documentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document id is required", nil)
		return
	}

	doc, err := h.DocRepo.GetByID(c.Request.Context(), sessionID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start analysis", nil)
		}
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	analysis, err := h.Svc.Create(ctx, sessionID, doc.ID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start analysis", nil)
		return
	}

	c.Set("documentId", doc.ID)
	c.Set("analysisId", analysis.ID)
	respond.Accepted(c, gin.H{
		"analysisId": analysis.ID,
		"status":     analysis.Status,
	})
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

func (h *Handler) analyzeText(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Text) > maxTextLength {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text too large", nil)
		return
	}

	analysis, err := h.Svc.AnalyzeText(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze text", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.OK(c, analysisResponse(analysis))
}

func (h *Handler) getAnalysis(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id is required", nil)
		return
	}

	analysis, err := h.Svc.Get(c.Request.Context(), sessionID, analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	respond.OK(c, analysisResponse(analysis))
}

func (h *Handler) getReport(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	analysisID := c.Param("id")

	report, err := h.Svc.Report(c.Request.Context(), sessionID, analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusConflict, "not_ready", "analysis is not completed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render report", nil)
		}
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, report)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), sessionID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	resp := make([]gin.H, 0, len(list))
	for _, a := range list {
		item := gin.H{
			"analysisId": a.ID,
			"status":     a.Status,
			"createdAt":  a.CreatedAt,
		}
		if strings.TrimSpace(a.DocumentID) != "" {
			item["documentId"] = a.DocumentID
		}
		if a.Status == StatusCompleted && a.OverallScore != nil {
			item["overallScore"] = *a.OverallScore
		}
		resp = append(resp, item)
	}

	respond.OK(c, resp)
}

func analysisResponse(a Analysis) gin.H {
	resp := gin.H{
		"analysisId": a.ID,
		"status":     a.Status,
		"createdAt":  a.CreatedAt,
	}
	if a.DocumentID != "" {
		resp["documentId"] = a.DocumentID
	}
	if a.Status == StatusCompleted && a.Result != nil {
		resp["result"] = a.Result
	}
	if a.Status == StatusFailed {
		if a.ErrorCode != nil {
			resp["errorCode"] = *a.ErrorCode
		}
		if a.ErrorMessage != nil {
			resp["errorMessage"] = *a.ErrorMessage
		}
	}
	return resp
}
