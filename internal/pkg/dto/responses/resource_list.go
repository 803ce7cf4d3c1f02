package responses

// ResourceList is the envelope for every list screen. EmptyMessage is set
// only when the filtered result set is empty so the console renders the
// distinct "no records" state instead of a bare table.
type ResourceList struct {
	Items        interface{} `json:"items"`
	Total        int         `json:"total"`
	EmptyMessage string      `json:"empty_message,omitempty"`
}
