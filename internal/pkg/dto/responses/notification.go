package responses

import "time"

// Notification is the console's toast payload: transient, fire-and-forget,
// never acknowledged. It rides on the HTTP response and is also published to
// the notification queue.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Resource  string    `json:"resource,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
