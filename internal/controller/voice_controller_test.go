package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidyai_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voiceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := NewVoiceController(service.NewVoiceService())
	router.POST("/api/voice_command", c.HandleCommand)
	return router
}

func TestHandleCommandNavigates(t *testing.T) {
	router := voiceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/voice_command", strings.NewReader(`{"command":"open the dashboard"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"navigate"`)
	assert.Contains(t, w.Body.String(), `"url":"/dashboard"`)
}

func TestHandleCommandMissingCommand(t *testing.T) {
	router := voiceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/voice_command", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCommandNotUnderstood(t *testing.T) {
	router := voiceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/voice_command", strings.NewReader(`{"command":"sing a song"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"speak"`)
}
