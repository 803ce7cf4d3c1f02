package hms_dto

type Patient struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Gender            string `json:"gender,omitempty"`
	DateOfBirth       string `json:"date_of_birth,omitempty"`
	Phone             string `json:"phone"`
	Aadhar            string `json:"aadhar,omitempty"`
	Address           string `json:"address,omitempty"`
	BloodGroup        string `json:"blood_group,omitempty"`
	AssignedDoctorID  string `json:"assigned_doctor_id,omitempty"`
	MedicalConditions string `json:"medical_conditions,omitempty"`
}

func (p Patient) RecordID() string { return p.ID }
