package hms_dto

type Appointment struct {
	ID         string `json:"id"`
	PatientID  string `json:"patient_id"`
	DoctorID   string `json:"doctor_id"`
	Department string `json:"department,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

func (a Appointment) RecordID() string { return a.ID }
