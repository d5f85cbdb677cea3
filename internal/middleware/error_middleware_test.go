package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.NewValidationError("bad"), http.StatusUnprocessableEntity},
		{apperrors.NewBadRequestError("Student has not given this Exam"), http.StatusBadRequest},
		{apperrors.ErrDataNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", apperrors.NotFoundWithID("Exam", 3)), http.StatusNotFound},
		{apperrors.NewConflictError(errors.New("duplicate")), http.StatusConflict},
		{apperrors.NewConnectionError(errors.New("refused")), http.StatusInternalServerError},
		{apperrors.NewInternalError(errors.New("syntax")), http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusForError(tt.err), tt.err.Error())
	}
}

func TestHandleAPIErrorWritesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/exam/3", nil)

	HandleAPIError(c, fmt.Errorf("error checking exam: %w", apperrors.NewInternalError(errors.New("Table 'Exam' doesn't exist"))))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Table 'Exam' doesn't exist", body.Detail)
	assert.Empty(t, body.Errors)
	assert.True(t, c.IsAborted())
}
