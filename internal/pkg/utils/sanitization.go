package utils

import (
	"mediboard-service/internal/pkg/dto/requests"
	"strings"
)

// SanitizeListQuery trims the free-text controls so stray whitespace from the
// console never changes match results.
func SanitizeListQuery(query *requests.ListQuery) {
	query.Search = strings.TrimSpace(query.Search)
	query.SortField = strings.TrimSpace(query.SortField)
	query.SortOrder = strings.ToLower(strings.TrimSpace(query.SortOrder))
	for field, value := range query.Filters {
		query.Filters[field] = strings.TrimSpace(value)
	}
}

// SanitizeDraft trims every string value in a submitted draft in place.
func SanitizeDraft(draft map[string]interface{}) {
	for field, value := range draft {
		if s, ok := value.(string); ok {
			draft[field] = strings.TrimSpace(s)
		}
	}
}
