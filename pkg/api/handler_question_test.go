package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// postJSONContext builds a gin test context carrying a JSON request body.
func postJSONContext(t *testing.T, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, rec
}

func TestSubmitQuestionHandler_Validation(t *testing.T) {
	// Only parameter validation is tested here (returns 400/413 before
	// touching the service). Happy-path is covered by server_test.go.
	s := &Server{}

	t.Run("rejects malformed JSON", func(t *testing.T) {
		c, rec := postJSONContext(t, "/api/v1/questions", "{not json")
		s.submitQuestionHandler(c)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects missing question", func(t *testing.T) {
		c, rec := postJSONContext(t, "/api/v1/questions", `{"tenant_id": 1}`)
		s.submitQuestionHandler(c)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "question field is required")
	})

	t.Run("rejects oversized question", func(t *testing.T) {
		question := strings.Repeat("x", maxQuestionBytes+1)
		c, rec := postJSONContext(t, "/api/v1/questions",
			`{"tenant_id": 1, "question": "`+question+`"}`)
		s.submitQuestionHandler(c)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "exceeds maximum size")
	})
}

func TestSessionHandlers_RequireID(t *testing.T) {
	s := &Server{}

	handlers := map[string]gin.HandlerFunc{
		"get session":   s.getSessionHandler,
		"get result":    s.getResultHandler,
		"clarification": s.clarificationHandler,
		"cancel":        s.cancelSessionHandler,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
			c.Params = gin.Params{{Key: "id", Value: ""}}

			handler(c)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "session id is required")
		})
	}
}

func TestClarificationHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("rejects empty answer", func(t *testing.T) {
		c, rec := postJSONContext(t, "/api/v1/sessions/abc/clarification", `{"answer": ""}`)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		s.clarificationHandler(c)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "answer field is required")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		c, rec := postJSONContext(t, "/api/v1/sessions/abc/clarification", "{")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		s.clarificationHandler(c)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
