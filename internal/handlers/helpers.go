package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "kumbara/internal/errors"
	"kumbara/internal/format"
)

// storedDateLayout is the ISO-8601 layout dates are stored with.
const storedDateLayout = "2006-01-02T15:04:05.000Z"

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse documents the error body rendered by middleware.ErrorHandler.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// monthURI binds the :month path parameter.
type monthURI struct {
	Month string `uri:"month" binding:"required,month_key"`
}

// bindingError maps a binding failure to an AppError. Unknown categories and
// malformed months get their own codes.
func bindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "category_name":
				return apperrors.WithMessage(apperrors.ErrUnknownCategory, fmt.Sprintf("Unknown category: %v", fe.Value()))
			case "month_key":
				return apperrors.ErrInvalidMonth
			}
		}
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// parseMonth validates the :month path parameter.
func parseMonth(c *gin.Context) (string, error) {
	var uri monthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return "", bindingError(err)
	}
	return uri.Month, nil
}

// normalizeDate converts an accepted timestamp to the stored UTC layout.
// An empty string stays empty so the store can default it.
func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", nil
	}
	t, err := format.ParseDate(date)
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be an ISO-8601 timestamp or YYYY-MM-DD")
	}
	return t.UTC().Format(storedDateLayout), nil
}
