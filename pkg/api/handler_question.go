package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/querra-ai/querra/pkg/services"
)

// maxQuestionBytes bounds the accepted question size (64 KiB).
const maxQuestionBytes = 64 * 1024

// submitQuestionHandler handles POST /api/v1/questions.
// Creates a session in "pending" status and returns immediately with session_id.
func (s *Server) submitQuestionHandler(c *gin.Context) {
	// 1. Bind HTTP request
	var req SubmitQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. Validate required fields
	if req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question field is required"})
		return
	}

	// 3. Enforce question size limit
	if len(req.Question) > maxQuestionBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("question exceeds maximum size of %d bytes", maxQuestionBytes),
		})
		return
	}

	// 4. Transform to service input
	input := services.SubmitQuestionInput{
		TenantID:         req.TenantID,
		Question:         req.Question,
		SchemaSnapshotID: req.SchemaSnapshotID,
		PageSize:         req.PageSize,
		PageToken:        req.PageToken,
		Seed:             req.Seed,
		TraceID:          req.TraceID,
	}

	// 5. Call service
	session, err := s.questions.SubmitQuestion(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// 6. Return response
	c.JSON(http.StatusAccepted, &QuestionResponse{
		SessionID: session.ID,
		Status:    "queued",
		Message:   "Question submitted for processing",
	})
}
