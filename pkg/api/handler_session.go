package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/services"
)

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	session, err := s.sessions.GetSession(c.Request.Context(), sessionID, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

// getResultHandler handles GET /api/v1/sessions/:id/result.
// Terminal sessions return the stored outcome; non-terminal sessions return
// 409 with the current status so callers can poll. The response lifts
// next_page_token out of the result payload: submitting it with the same
// question via POST /api/v1/questions continues the keyset scan.
func (s *Server) getResultHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	session, err := s.sessions.GetSession(c.Request.Context(), sessionID, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	switch session.Status {
	case querysession.StatusPending, querysession.StatusInProgress:
		c.JSON(http.StatusConflict, gin.H{
			"error":  "session has not finished",
			"status": string(session.Status),
		})
		return
	case querysession.StatusAwaitingClarification:
		c.JSON(http.StatusConflict, gin.H{
			"error":                  "session is awaiting clarification",
			"status":                 string(session.Status),
			"clarification_question": derefString(session.ClarificationQuestion),
		})
		return
	}

	c.JSON(http.StatusOK, newResultResponse(session))
}

// clarificationHandler handles POST /api/v1/sessions/:id/clarification.
// Stores the user's answer and moves the suspended session back to pending;
// the next worker to claim it resumes the workflow from its checkpoint.
func (s *Server) clarificationHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	var req ClarificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer field is required"})
		return
	}

	err := s.sessions.ResumeFromClarification(c.Request.Context(), sessionID, req.Answer)
	if err != nil {
		// The guarded update cannot tell a missing session from one in the
		// wrong state; resolve to 404 when the session does not exist.
		if errors.Is(err, services.ErrConcurrentModification) {
			if _, getErr := s.sessions.GetSession(c.Request.Context(), sessionID, false); getErr != nil {
				respondServiceError(c, getErr)
				return
			}
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &QuestionResponse{
		SessionID: sessionID,
		Status:    "queued",
		Message:   "Clarification received, session resumed",
	})
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel.
func (s *Server) cancelSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	// Try the queue-resident transition (pending / awaiting_clarification).
	sessionErr := s.sessions.CancelSession(c.Request.Context(), sessionID)

	// Always try to cancel on this pod via the worker pool: the run may be
	// in_progress here even when the DB transition was rejected.
	poolCancelled := false
	if s.workerPool != nil {
		poolCancelled = s.workerPool.CancelSession(sessionID)
	}

	if sessionErr != nil && !poolCancelled {
		respondServiceError(c, sessionErr)
		return
	}

	c.JSON(http.StatusOK, &CancelResponse{
		SessionID: sessionID,
		Message:   "Session cancellation requested",
	})
}
