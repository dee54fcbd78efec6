package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestSessionGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session())

	var got string
	r.GET("/x", func(c *gin.Context) {
		got = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)

	if got == "" {
		t.Fatal("expected a generated session id")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("generated id is not a uuid: %q", got)
	}
	if hdr := w.Header().Get("X-Session-Id"); hdr != got {
		t.Fatalf("response header %q does not match context id %q", hdr, got)
	}
}

func TestSessionKeepsExistingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session())

	var got string
	r.GET("/x", func(c *gin.Context) {
		got = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})

	want := uuid.NewString()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Session-Id", want)
	r.ServeHTTP(w, req)

	if got != want {
		t.Fatalf("got session %q, want %q", got, want)
	}
}

func TestSessionRejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session())

	var got string
	r.GET("/x", func(c *gin.Context) {
		got = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Session-Id", "not-a-uuid")
	r.ServeHTTP(w, req)

	if got == "not-a-uuid" {
		t.Fatal("malformed session id should be replaced")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("replacement id is not a uuid: %q", got)
	}
}
