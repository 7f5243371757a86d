// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("paid_by", validatePaidBy)
		_ = v.RegisterValidation("expense_discriminator", validateDiscriminator)
	}
}

func validatePaidBy(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Bank", "Card", "Cash":
		return true
	}
	return false
}

// validateDiscriminator covers the grouping/filter field selector shared by
// the list and group endpoints.
func validateDiscriminator(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "category", "paid_by":
		return true
	}
	return false
}
