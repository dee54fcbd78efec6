package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionIDKey      = "sessionId"
	sessionHeaderName = "X-Session-Id"
)

// Session resolves the caller's session identity. Clients that already
// hold a session pass it back via X-Session-Id; first-time callers get
// a fresh one, echoed on the response so they can persist it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		sid := strings.TrimSpace(c.GetHeader(sessionHeaderName))
		if sid == "" || !validSessionID(sid) {
			sid = uuid.NewString()
		}

		c.Set(sessionIDKey, sid)
		c.Writer.Header().Set(sessionHeaderName, sid)
		c.Next()
	}
}

// SessionIDFromContext returns the session id set by Session, or ""
// when the middleware did not run.
func SessionIDFromContext(c *gin.Context) string {
	if v, ok := c.Get(sessionIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// validSessionID rejects ids that could not have come from us. Session
// ids are always UUIDs, so anything else is treated as absent.
func validSessionID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
