package hms_dto

type Room struct {
	ID                string `json:"id"`
	RoomNumber        string `json:"room_number"`
	Ward              string `json:"ward,omitempty"`
	Type              string `json:"type"`
	Department        string `json:"department,omitempty"`
	Status            string `json:"status"`
	AssignedPatientID string `json:"assigned_patient_id,omitempty"`
}

func (r Room) RecordID() string { return r.ID }
