// Package hms_dto holds the record shapes exposed by the remote hospital
// management backend. The backend owns these shapes; the console only reads
// identifiers and display fields from them.
package hms_dto

// Record is any backend-owned record with a stable, backend-assigned
// identifier.
type Record interface {
	RecordID() string
}
