package hms_dto

type Invoice struct {
	ID          string  `json:"id"`
	PatientID   string  `json:"patient_id"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

func (i Invoice) RecordID() string { return i.ID }
