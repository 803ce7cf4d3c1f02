// Package forms validates submitted drafts against per-resource field
// descriptors before any network call is made. Validation here mirrors what
// the backend enforces; passing it never implies the backend will accept the
// record.
package forms

import (
	"mediboard-service/internal/pkg/exceptions"
	"regexp"
	"strconv"
	"strings"
)

type FieldType string

const (
	FieldText             FieldType = "text"
	FieldSelect           FieldType = "select"
	FieldSearchableSelect FieldType = "searchable-select"
	FieldTextarea         FieldType = "textarea"
	FieldCheckbox         FieldType = "checkbox"
	FieldDate             FieldType = "date"
	FieldNumber           FieldType = "number"
)

// Field describes one form input: its JSON name, display label, kind,
// whether it blocks submission when empty, the option set for selects and an
// optional format pattern.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Required bool
	Options  []string
	Pattern  string
}

type Form struct {
	Fields []Field
}

// Validate checks the draft against the descriptors and returns the first
// failure, matching the one-toast-per-submit behavior of the console.
// Format and option rules only apply to non-empty values; emptiness is the
// required rule's concern.
func (f Form) Validate(draft map[string]interface{}) error {
	for _, field := range f.Fields {
		value := stringValue(draft[field.Name])

		if field.Required && value == "" {
			return exceptions.ErrRequiredField(field.Label)
		}
		if value == "" {
			continue
		}

		if field.Pattern != "" {
			matched, err := regexp.MatchString(field.Pattern, value)
			if err != nil || !matched {
				return exceptions.ErrFieldFormat(field.Label)
			}
		}

		if len(field.Options) > 0 && !containsOption(field.Options, value) {
			return exceptions.ErrFieldOption(field.Label)
		}
	}
	return nil
}

// stringValue renders a draft value the way the corresponding form input
// would, so one set of rules covers text, number and checkbox fields.
func stringValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func containsOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
