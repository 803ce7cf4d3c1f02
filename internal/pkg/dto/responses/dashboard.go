package responses

type DashboardSummary struct {
	TotalIncome         float64        `json:"total_income"`
	TotalExpense        float64        `json:"total_expense"`
	NetBalance          float64        `json:"net_balance"`
	RoomsByStatus       map[string]int `json:"rooms_by_status"`
	AppointmentsByState map[string]int `json:"appointments_by_status"`
	LabTestsByStatus    map[string]int `json:"lab_tests_by_status"`
	LowStockMedicines   int            `json:"low_stock_medicines"`
}
