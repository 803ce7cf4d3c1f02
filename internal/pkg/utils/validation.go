package utils

import (
	"mediboard-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("mobile", validateMobileNumber)
	validate.RegisterValidation("aadhar", validateAadharNumber)
	validate.RegisterValidation("pan", validatePANCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateMobileNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexIndianMobileNumber)
	return re.MatchString(fl.Field().String())
}

func validateAadharNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexAadharNumber)
	return re.MatchString(fl.Field().String())
}

func validatePANCode(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexPANCode)
	return re.MatchString(fl.Field().String())
}
