// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"kumbara/internal/categories"
	"kumbara/internal/models"
)

var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
// category_name accepts the names of the given categorizer.
func Register(categorizer *categories.Categorizer) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("month_key", validateMonthKey)
		_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
		_ = v.RegisterValidation("not_blank", validateNotBlank)
		_ = v.RegisterValidation("category_name", func(fl validator.FieldLevel) bool {
			return categorizer.IsKnown(fl.Field().String())
		})
	}
}

// IsMonthKey reports whether s is a zero-padded YYYY-MM month key.
func IsMonthKey(s string) bool {
	return monthKeyRegex.MatchString(s)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).IsValid()
}

func validateMonthKey(fl validator.FieldLevel) bool {
	return IsMonthKey(fl.Field().String())
}

// validatePositiveAmount accepts numeric strings (including json.Number)
// strictly greater than zero.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
