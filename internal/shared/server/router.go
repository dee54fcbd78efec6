package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-score/internal/analyses"
	"resume-score/internal/documents"
	"resume-score/internal/profile"
	"resume-score/internal/shared/config"
	"resume-score/internal/shared/metrics"
	"resume-score/internal/shared/server/middleware"
	"resume-score/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	DocumentHandler *documents.Handler
	AnalysisHandler *analyses.Handler
	ProfileHandler  *profile.Handler
}

// Rate limit groups. Scoring kicks off background work, so it is
// limited harder than reads; polling gets more headroom than default.
var rateLimitRules = map[string]middleware.RateLimitRule{
	"DEFAULT": {Rate: 10, Burst: 30},
	"POLLING": {Rate: 20, Burst: 60},
	"ANALYZE": {Rate: 2, Burst: 10},
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Session(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:        rateLimitRules,
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	registerSessionRoutes(api)

	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitGroup(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case c.Request.Method == http.MethodGet && path == "/api/v1/analyses/:id":
		return "POLLING"
	case c.Request.Method == http.MethodPost &&
		(path == "/api/v1/documents/:id/analyze" || path == "/api/v1/analyses/text" || path == "/api/v1/profile/analyze"):
		return "ANALYZE"
	default:
		return "DEFAULT"
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
