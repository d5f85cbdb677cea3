package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/logger"
)

var registerOnce sync.Once

// RegisterValidators installs the custom rules and JSON field naming on
// gin's validator engine. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			logger.Warn().Msg("Binding validator is not go-playground/validator, custom rules skipped")
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		if err := v.RegisterValidation("clock", validateClock); err != nil {
			logger.Error().Err(err).Msg("Failed to register clock validator")
		}
	})
}

// validateClock accepts HH:MM and HH:MM:SS
func validateClock(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// BindJSON binds and validates the request body into obj. On failure it
// writes a 422 response and returns false.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, bindingError(err))
		return false
	}
	return true
}

// bindingError converts a decode or validation failure into a validation error
func bindingError(err error) error {
	var validationErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &validationErrs):
		fields := make([]apperrors.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, apperrors.FieldError{
				Field:   fe.Field(),
				Message: formatValidationError(fe),
			})
		}
		return validationFailure("Request validation failed", fields)
	case errors.As(err, &typeErr):
		return validationFailure("Request validation failed", []apperrors.FieldError{{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be of type " + typeErr.Type.String(),
		}})
	case errors.As(err, &syntaxErr):
		return validationFailure("Malformed JSON body: "+syntaxErr.Error(), nil)
	case errors.Is(err, io.EOF):
		return validationFailure("Request body is required", nil)
	default:
		return validationFailure(err.Error(), nil)
	}
}

func validationFailure(message string, fields []apperrors.FieldError) error {
	return (&apperrors.CustomError{
		Err:     apperrors.ErrValidationFailed,
		Message: message,
	}).WithFields(fields)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		if e.Kind() == reflect.String {
			return e.Field() + " must be at least " + e.Param() + " characters"
		}
		return e.Field() + " must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return e.Field() + " must be at most " + e.Param() + " characters"
		}
		return e.Field() + " must be at most " + e.Param()
	case "datetime":
		return e.Field() + " must be a date in YYYY-MM-DD format"
	case "clock":
		return e.Field() + " must be a time in HH:MM or HH:MM:SS format"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// InvalidParam builds the validation error for a malformed path parameter
func InvalidParam(name, message string) error {
	return validationFailure("Invalid path parameter", []apperrors.FieldError{{
		Field:   name,
		Message: message,
	}})
}
