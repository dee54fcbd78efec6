package profile

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-score/internal/engine"
	"resume-score/internal/shared/server/middleware"
	"resume-score/internal/shared/server/respond"
)

// Handler exposes the profile builder over HTTP.
type Handler struct {
	Store  *Store
	Engine *engine.Engine
}

// NewHandler constructs a Handler.
func NewHandler(store *Store, eng *engine.Engine) *Handler {
	if eng == nil {
		eng = engine.New(nil, nil)
	}
	return &Handler{Store: store, Engine: eng}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.put)
	rg.GET("/profile/export", h.export)
	rg.POST("/profile/import", h.importProfile)
	rg.GET("/profile/render", h.render)
	rg.POST("/profile/analyze", h.analyze)

	rg.PUT("/profile/personal-info", h.setPersonalInfo)
	rg.POST("/profile/experience", h.addExperience)
	rg.DELETE("/profile/experience/:index", h.removeExperience)
	rg.POST("/profile/education", h.addEducation)
	rg.DELETE("/profile/education/:index", h.removeEducation)
	rg.POST("/profile/projects", h.addProject)
	rg.DELETE("/profile/projects/:index", h.removeProject)
	rg.POST("/profile/skills", h.addSkill)
	rg.DELETE("/profile/skills/:skill", h.removeSkill)
	rg.POST("/profile/certifications", h.addCertification)
	rg.DELETE("/profile/certifications/:cert", h.removeCertification)
}

func (h *Handler) get(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	respond.OK(c, h.Store.Get(sessionID))
}

func (h *Handler) put(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	var p Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid profile body", nil)
		return
	}
	h.Store.Put(sessionID, p)
	respond.OK(c, h.Store.Get(sessionID))
}

func (h *Handler) export(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	data, err := h.Store.Export(sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export profile", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="profile.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (h *Handler) importProfile(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	data, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read body", nil)
		return
	}
	if err := h.Store.Import(sessionID, data); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid profile JSON", nil)
		return
	}
	respond.OK(c, h.Store.Get(sessionID))
}

func (h *Handler) render(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	var buf bytes.Buffer
	if err := Render(&buf, h.Store.Get(sessionID)); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render profile", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) analyze(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	text := h.Store.Get(sessionID).Flatten()

	assessment := h.Engine.Analyze(c.Request.Context(), text)
	respond.OK(c, assessment)
}

func (h *Handler) setPersonalInfo(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	var info PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid personal info body", nil)
		return
	}
	h.Store.SetPersonalInfo(sessionID, info)
	respond.OK(c, h.Store.Get(sessionID))
}

func (h *Handler) addExperience(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	var entry ExperienceEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid experience body", nil)
		return
	}
	h.addEntry(c, h.Store.AddExperience(sessionID, entry), sessionID)
}

func (h *Handler) removeExperience(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	h.removeIndexed(c, sessionID, h.Store.RemoveExperience)
}

func (h *Handler) addEducation(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	var entry EducationEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid education body", nil)
		return
	}
	h.addEntry(c, h.Store.AddEducation(sessionID, entry), sessionID)
}

func (h *Handler) removeEducation(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	h.removeIndexed(c, sessionID, h.Store.RemoveEducation)
}

func (h *Handler) addProject(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	var entry ProjectEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid project body", nil)
		return
	}
	h.addEntry(c, h.Store.AddProject(sessionID, entry), sessionID)
}

func (h *Handler) removeProject(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	h.removeIndexed(c, sessionID, h.Store.RemoveProject)
}

type skillRequest struct {
	Skill string `json:"skill"`
}

func (h *Handler) addSkill(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid skill body", nil)
		return
	}
	h.addEntry(c, h.Store.AddSkill(sessionID, req.Skill), sessionID)
}

func (h *Handler) removeSkill(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	h.removeNamed(c, h.Store.RemoveSkill(sessionID, c.Param("skill")), sessionID)
}

type certificationRequest struct {
	Certification string `json:"certification"`
}

func (h *Handler) addCertification(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	var req certificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid certification body", nil)
		return
	}
	h.addEntry(c, h.Store.AddCertification(sessionID, req.Certification), sessionID)
}

func (h *Handler) removeCertification(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	h.removeNamed(c, h.Store.RemoveCertification(sessionID, c.Param("cert")), sessionID)
}

func (h *Handler) addEntry(c *gin.Context, err error, sessionID string) {
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update profile", nil)
		return
	}
	respond.Created(c, h.Store.Get(sessionID))
}

func (h *Handler) removeIndexed(c *gin.Context, sessionID string, remove func(string, int) error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "index must be an integer", nil)
		return
	}
	h.removeNamed(c, remove(sessionID, index), sessionID)
}

func (h *Handler) removeNamed(c *gin.Context, err error, sessionID string) {
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile entry not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update profile", nil)
		return
	}
	respond.OK(c, h.Store.Get(sessionID))
}
