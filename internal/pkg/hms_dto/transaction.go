package hms_dto

type Transaction struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Category string  `json:"category,omitempty"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Note     string  `json:"note,omitempty"`
}

func (t Transaction) RecordID() string { return t.ID }
