package constvars

const (
	ResourceRoom        = "rooms"
	ResourceDepartment  = "departments"
	ResourcePatient     = "patients"
	ResourceStaff       = "staff"
	ResourceAppointment = "appointments"
	ResourceMedicine    = "medicines"
	ResourceInvoice     = "invoices"
	ResourceTransaction = "transactions"
	ResourceLabTest     = "lab-tests"
	ResourceSettings    = "settings"
)

const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

const (
	AppointmentStatusScheduled = "Scheduled"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
)

const (
	InvoiceStatusPaid   = "Paid"
	InvoiceStatusUnpaid = "Unpaid"
)

const (
	TransactionTypeIncome  = "Income"
	TransactionTypeExpense = "Expense"
)

const (
	LabTestStatusPending         = "Pending"
	LabTestStatusSampleCollected = "Sample Collected"
	LabTestStatusProcessing      = "Processing"
	LabTestStatusCompleted       = "Completed"
)
