// Package listview applies the table controls every resource screen shares:
// free-text search, exact-match filters and single-column sorting. All of it
// runs in process over an already-fetched collection; the backend is never
// consulted.
package listview

import (
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/requests"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Apply filters and sorts the collection. Search matches case-insensitively
// against the designated search fields, filters require exact field equality,
// and the two are combined with logical AND.
func Apply[T any](items []T, query requests.ListQuery, searchFields []string) []T {
	result := make([]T, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(query.Search))

	for _, item := range items {
		if search != "" && !matchesSearch(item, search, searchFields) {
			continue
		}
		if !matchesFilters(item, query.Filters) {
			continue
		}
		result = append(result, item)
	}

	if query.SortField != "" {
		sortBy(result, query.SortField, query.SortOrder == constvars.SortOrderDescending)
	}
	return result
}

func matchesSearch[T any](item T, search string, searchFields []string) bool {
	for _, field := range searchFields {
		value, ok := FieldValue(item, field)
		if ok && strings.Contains(strings.ToLower(value), search) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters map[string]string) bool {
	for field, expected := range filters {
		if expected == "" {
			continue
		}
		value, ok := FieldValue(item, field)
		if !ok || value != expected {
			return false
		}
	}
	return true
}

// sortBy orders in place. The sort is stable so records that compare equal
// keep their fetched order across repeated toggles.
func sortBy[T any](items []T, field string, descending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		left, _ := FieldValue(items[i], field)
		right, _ := FieldValue(items[j], field)

		less := compareValues(left, right)
		if descending {
			return compareValues(right, left)
		}
		return less
	})
}

// compareValues orders numerically when both sides parse as numbers, falling
// back to case-insensitive lexicographic order.
func compareValues(left, right string) bool {
	leftNum, leftErr := strconv.ParseFloat(left, 64)
	rightNum, rightErr := strconv.ParseFloat(right, 64)
	if leftErr == nil && rightErr == nil {
		return leftNum < rightNum
	}
	return strings.ToLower(left) < strings.ToLower(right)
}

// FieldValue resolves a record field by its JSON tag name and renders it as
// the string the table displays.
func FieldValue(item interface{}, jsonName string) (string, bool) {
	value := reflect.ValueOf(item)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return "", false
	}

	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		tag := structType.Field(i).Tag.Get("json")
		name := strings.Split(tag, ",")[0]
		if name != jsonName {
			continue
		}
		return renderValue(value.Field(i)), true
	}
	return "", false
}

func renderValue(field reflect.Value) string {
	switch field.Kind() {
	case reflect.String:
		return field.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(field.Bool())
	default:
		return ""
	}
}
