package hms_dto

type StaffMember struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Department string  `json:"department,omitempty"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email,omitempty"`
	PAN        string  `json:"pan,omitempty"`
	Salary     float64 `json:"salary,omitempty"`
}

func (s StaffMember) RecordID() string { return s.ID }
