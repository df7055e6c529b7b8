package httpx_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/slf4g/pkg/binding/console"
	"github.com/Gunvolt24/slf4g/pkg/httpx"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

func newRouter(log slf4g.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RequestIDMiddleware(), httpx.RequestLogger(log))
	r.GET("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRequestLogger_LogsWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := console.NewWithWriter(&buf, slf4g.LevelInfo, false).Get("http")
	r := newRouter(log)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/7", http.NoBody)
	req.Header.Set(httpx.HeaderRequestID, "rid-1")
	r.ServeHTTP(w, req)

	line := strings.TrimSpace(buf.String())
	for _, want := range []string{
		"http info: request method=GET path=/items/:id status=200",
		"size=2",
		"request_id=rid-1",
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q must contain %q", line, want)
		}
	}
}

func TestRequestLogger_SkipsPing(t *testing.T) {
	var buf bytes.Buffer
	log := console.NewWithWriter(&buf, slf4g.LevelInfo, false).Get("http")
	r := newRouter(log)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	if buf.Len() != 0 {
		t.Fatalf("/ping must not be logged, got %q", buf.String())
	}
}

func TestRequestLogger_UnknownRouteUsesURLPath(t *testing.T) {
	var buf bytes.Buffer
	log := console.NewWithWriter(&buf, slf4g.LevelInfo, false).Get("http")
	r := newRouter(log)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", http.NoBody))

	if !strings.Contains(buf.String(), "path=/missing status=404") {
		t.Fatalf("unexpected log line %q", buf.String())
	}
}

func TestRequestLogger_NopLogger(t *testing.T) {
	r := newRouter(slf4g.Nop().Get("http"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/1", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("handler must still run, got %d", w.Code)
	}
}
