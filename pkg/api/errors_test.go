package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/querra-ai/querra/pkg/services"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("tenant_id", "must be positive"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "tenant_id",
		},
		{
			name:       "wrapped validation error",
			err:        errors.Join(services.NewValidationError("page_size", "too big")),
			wantStatus: http.StatusBadRequest,
			wantBody:   "page_size",
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "resource not found",
		},
		{
			name:       "not cancellable",
			err:        services.ErrNotCancellable,
			wantStatus: http.StatusConflict,
			wantBody:   "not in a cancellable state",
		},
		{
			name:       "concurrent modification",
			err:        services.ErrConcurrentModification,
			wantStatus: http.StatusConflict,
			wantBody:   "not awaiting clarification",
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   "already exists",
		},
		{
			name:       "unexpected error",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			respondServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
