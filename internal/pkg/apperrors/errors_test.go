package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMatchesSentinelAndCause(t *testing.T) {
	cause := errors.New("Duplicate entry '1' for key 'PRIMARY'")
	err := fmt.Errorf("insert: %w", NewConflictError(cause))

	assert.ErrorIs(t, err, ErrResourceAlreadyExists)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrResourceNotFound)
	assert.Equal(t, cause.Error(), Detail(err))
}

func TestNotFoundWithID(t *testing.T) {
	assert.Equal(t, "Exam with ID 12 not found", Detail(NotFoundWithID("Exam", int64(12))))
	assert.Equal(t, "Unit with ID CSE not found", Detail(NotFoundWithID("Unit", "CSE")))
	assert.ErrorIs(t, ErrDataNotFound, ErrResourceNotFound)
}

func TestDetailOfPlainError(t *testing.T) {
	assert.Equal(t, "boom", Detail(errors.New("boom")))
}
