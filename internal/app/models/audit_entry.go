package models

import "time"

// AuditEntry records one mutation carried out through the console. Entries
// are insert-only; the console never updates or deletes them.
type AuditEntry struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Action    string    `bson:"action" json:"action"`
	Resource  string    `bson:"resource" json:"resource"`
	RecordID  string    `bson:"record_id,omitempty" json:"record_id,omitempty"`
	RequestID string    `bson:"request_id,omitempty" json:"request_id,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

const (
	AuditActionCreate     = "create"
	AuditActionUpdate     = "update"
	AuditActionDelete     = "delete"
	AuditActionTransition = "transition"
	AuditActionUpload     = "upload"
)
