package hms_dto

type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	HeadStaffID string `json:"head_staff_id,omitempty"`
}

func (d Department) RecordID() string { return d.ID }
