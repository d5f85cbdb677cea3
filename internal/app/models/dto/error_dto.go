package dto

import "github.com/yigit/admission/internal/pkg/apperrors"

// ErrorResponse is the body of every non-2xx response. Detail carries the
// underlying error text; Errors lists failed field constraints, if any.
type ErrorResponse struct {
	Detail string                 `json:"detail"`
	Errors []apperrors.FieldError `json:"errors,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(detail string, fields []apperrors.FieldError) ErrorResponse {
	return ErrorResponse{Detail: detail, Errors: fields}
}
