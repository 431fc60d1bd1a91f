package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimgiray/gfolio/pkg/logger"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := newRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ok", nil)
	router.ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestIDReused(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		reused bool
	}{
		{"valid uuid", "6f1c2f4e-8d7a-4c1b-9a51-0b6f0d6a2e11", true},
		{"garbage", "not-an-id", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter()

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/ok", nil)
			req.Header.Set(RequestIDHeader, tc.header)
			router.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if tc.reused {
				assert.Equal(t, tc.header, got)
			} else {
				assert.NotEqual(t, tc.header, got)
				assert.NotEmpty(t, got)
			}
		})
	}
}

func TestRequestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.Init()

	router := newRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/boom", nil)
	router.ServeHTTP(w, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/boom", entry["path"])
	assert.EqualValues(t, 500, entry["status"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry["request_id"])
}
