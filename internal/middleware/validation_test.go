package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/admission/internal/app/models/dto"
)

type schedulePayload struct {
	ExamTime string `json:"ExamTime" binding:"required,clock"`
	VenueID  int64  `json:"VenueID" binding:"min=0"`
}

func bind(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	RegisterValidators()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var payload schedulePayload
	return rec, BindJSON(c, &payload)
}

func TestBindJSONAcceptsClockFormats(t *testing.T) {
	for _, clock := range []string{"09:30", "09:30:00", "23:59:59"} {
		_, ok := bind(t, `{"ExamTime": "`+clock+`", "VenueID": 1}`)
		assert.True(t, ok, clock)
	}
}

func TestBindJSONRejectsWithFieldErrors(t *testing.T) {
	rec, ok := bind(t, `{"ExamTime": "9.30", "VenueID": -1}`)
	require.False(t, ok)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Request validation failed", body.Detail)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "ExamTime", body.Errors[0].Field)
	assert.Equal(t, "ExamTime must be a time in HH:MM or HH:MM:SS format", body.Errors[0].Message)
	assert.Equal(t, "VenueID", body.Errors[1].Field)
	assert.Equal(t, "VenueID must be at least 0", body.Errors[1].Message)
}

func TestBindJSONTypeMismatch(t *testing.T) {
	rec, ok := bind(t, `{"ExamTime": "09:30", "VenueID": "two"}`)
	require.False(t, ok)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "VenueID", body.Errors[0].Field)
}
