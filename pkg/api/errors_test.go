package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/secopshq/caseflow/pkg/approval"
	"github.com/secopshq/caseflow/pkg/pipeline"
	"github.com/secopshq/caseflow/pkg/prompt"
	"github.com/secopshq/caseflow/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "case not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "prompt not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", prompt.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "approval not found maps to 404",
			err:        approval.ErrNotFound,
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already decided maps to 409",
			err:        fmt.Errorf("wrapped: %w", approval.ErrAlreadyDecided),
			expectCode: http.StatusConflict,
			expectMsg:  "approval already decided",
		},
		{
			name:       "run in flight maps to 409",
			err:        pipeline.ErrRunInFlight,
			expectCode: http.StatusConflict,
			expectMsg:  "enrichment already running",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
