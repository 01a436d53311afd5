package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func sanitizedRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/echo", SanitizeAndCleanInputMiddleware(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		*captured = string(body)
		c.Status(http.StatusOK)
	})
	return r
}

func TestSanitizeStripsMarkup(t *testing.T) {
	var captured string
	r := sanitizedRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/echo", strings.NewReader(`{"bio":"<script>alert(1)</script>hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, captured, "<script>")
	assert.Contains(t, captured, "hello")
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	var captured string
	r := sanitizedRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/echo", strings.NewReader(`{"bio":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Malformed JSON")
}

func TestSanitizeSkipsNonJSONBodies(t *testing.T) {
	var captured string
	r := sanitizedRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/echo", strings.NewReader("raw bytes"))
	req.Header.Set("Content-Type", "text/plain")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "raw bytes", captured)
}

func TestSanitizeSkipsGetRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", SanitizeAndCleanInputMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
