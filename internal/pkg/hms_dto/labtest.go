package hms_dto

type LabTest struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	TestName     string `json:"test_name"`
	Status       string `json:"status"`
	Billed       bool   `json:"billed"`
	Result       string `json:"result,omitempty"`
	ReportObject string `json:"report_object,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func (l LabTest) RecordID() string { return l.ID }
