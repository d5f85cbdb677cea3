package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/logger"
)

// StatusForError maps an application error to its HTTP status
func StatusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError writes the error response for err and aborts the chain
func HandleAPIError(c *gin.Context, err error) {
	status := StatusForError(err)

	var fields []apperrors.FieldError
	var ce *apperrors.CustomError
	if errors.As(err, &ce) {
		fields = ce.Fields
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("requestID", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(apperrors.Detail(err), fields))
}
