package resources

import "mediboard-service/internal/app/services/shared/forms"

// Descriptor is the per-resource configuration that turns the one generic
// list/form pair into a concrete screen: where the collection lives on the
// backend, which fields the free-text search scans, which fields may be
// filtered, and the add/edit form layout.
type Descriptor struct {
	Name         string
	DisplayName  string
	Path         string
	SearchFields []string
	FilterFields []string
	Form         forms.Form
}
