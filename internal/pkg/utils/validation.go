package utils

import (
	"hospadmin-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var sipRegex = regexp.MustCompile(constvars.RegexSIP)

func init() {
	validate = validator.New()
	validate.RegisterValidation("sip", validateSIP)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateSIP accepts exactly seven numeric digits, nothing else.
func validateSIP(fl validator.FieldLevel) bool {
	return sipRegex.MatchString(fl.Field().String())
}

func IsValidSIP(sip string) bool {
	return sipRegex.MatchString(sip)
}
