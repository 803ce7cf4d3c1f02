package requests

// ListQuery captures the client-side list controls: free-text search,
// exact-match filters and a single sort column. All of it is applied in
// process over the fetched collection, never forwarded to the backend.
type ListQuery struct {
	Search    string
	Filters   map[string]string
	SortField string
	SortOrder string
}
