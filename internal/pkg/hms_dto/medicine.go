package hms_dto

type Medicine struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category,omitempty"`
	Stock      int     `json:"stock"`
	Unit       string  `json:"unit,omitempty"`
	Price      float64 `json:"price,omitempty"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
}

func (m Medicine) RecordID() string { return m.ID }
