package server

import (
	"github.com/gin-gonic/gin"

	"resume-score/internal/shared/server/middleware"
	"resume-score/internal/shared/server/respond"
)

// registerSessionRoutes attaches the /session endpoint. It lets clients
// discover the session ID the server assigned them.
func registerSessionRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", sessionHandler)
}

func sessionHandler(c *gin.Context) {
	respond.OK(c, gin.H{
		"sessionId": middleware.SessionIDFromContext(c),
	})
}
