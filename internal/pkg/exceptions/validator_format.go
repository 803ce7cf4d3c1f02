package exceptions

import (
	"fmt"
	"mediboard-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first validator.v10 failure into a
// client-readable sentence. Only the first is surfaced since the console shows
// a single toast per failed submit.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	message, ok := constvars.ValidationErrorMessages[fieldError.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid", humanizeFieldName(fieldError.Field()))
	}

	if constvars.ValidationTagsWithParams[fieldError.Tag()] {
		message = fmt.Sprintf(message, fieldError.Param())
	}
	return fmt.Sprintf("%s %s", humanizeFieldName(fieldError.Field()), message)
}

func humanizeFieldName(field string) string {
	var words []string
	start := 0
	for i := 1; i < len(field); i++ {
		if field[i] >= 'A' && field[i] <= 'Z' {
			words = append(words, field[start:i])
			start = i
		}
	}
	words = append(words, field[start:])
	return strings.Join(words, " ")
}
