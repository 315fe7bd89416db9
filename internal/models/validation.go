package models

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var bdMobilePattern = regexp.MustCompile(`^01\d{9}$`)

// NormalizePhone strips whitespace and a leading +88 country code.
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")

	return strings.TrimPrefix(phone, "+88")
}

// IsBDMobile reports whether phone normalizes to an 11-digit Bangladeshi
// mobile number (01XXXXXXXXX).
func IsBDMobile(phone string) bool {
	return bdMobilePattern.MatchString(NormalizePhone(phone))
}

// RegisterValidations adds the storefront's custom rules to a validator
// instance. Must be called on every validator used against request models.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("bd_mobile", func(fl validator.FieldLevel) bool {
		return IsBDMobile(fl.Field().String())
	})
}
