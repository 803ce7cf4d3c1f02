package responses

type ResponseDTO struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Data         interface{}   `json:"data,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}
