package hms_dto

type Settings struct {
	ID           string `json:"id"`
	HospitalName string `json:"hospital_name"`
	AddressLine  string `json:"address_line,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Currency     string `json:"currency,omitempty"`
}

func (s Settings) RecordID() string { return s.ID }
