package resources

import (
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/services/shared/forms"
	"mediboard-service/internal/pkg/constvars"
)

// The catalog is the single source of backend paths. Historically some
// screens called /api/<resource> and others /<resource>; every collection now
// goes through the configured prefix and nothing outside this file builds a
// path.
func backendPath(internalConfig *config.InternalConfig, resource string) string {
	return internalConfig.Backend.APIPrefix + "/" + resource
}

func RoomDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourceRoom,
		DisplayName:  "room",
		Path:         backendPath(internalConfig, constvars.ResourceRoom),
		SearchFields: []string{"room_number", "ward", "type"},
		FilterFields: []string{"status", "type", "department"},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "room_number", Label: "Room Number", Type: forms.FieldText, Required: true},
			{Name: "ward", Label: "Ward", Type: forms.FieldText},
			{Name: "type", Label: "Room Type", Type: forms.FieldSelect, Required: true, Options: []string{"General", "Private", "Semi-Private", "ICU", "Emergency"}},
			{Name: "department", Label: "Department", Type: forms.FieldSearchableSelect},
			{Name: "status", Label: "Status", Type: forms.FieldSelect, Required: true, Options: []string{constvars.RoomStatusAvailable, constvars.RoomStatusOccupied, constvars.RoomStatusMaintenance}},
			{Name: "assigned_patient_id", Label: "Assigned Patient", Type: forms.FieldSearchableSelect},
		}},
	}
}

func DepartmentDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourceDepartment,
		DisplayName:  "department",
		Path:         backendPath(internalConfig, constvars.ResourceDepartment),
		SearchFields: []string{"name"},
		FilterFields: []string{},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "name", Label: "Department Name", Type: forms.FieldText, Required: true},
			{Name: "description", Label: "Description", Type: forms.FieldTextarea},
			{Name: "head_staff_id", Label: "Department Head", Type: forms.FieldSearchableSelect},
		}},
	}
}

func PatientDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourcePatient,
		DisplayName:  "patient",
		Path:         backendPath(internalConfig, constvars.ResourcePatient),
		SearchFields: []string{"name", "phone", "aadhar"},
		FilterFields: []string{"gender", "blood_group"},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "name", Label: "Patient Name", Type: forms.FieldText, Required: true},
			{Name: "gender", Label: "Gender", Type: forms.FieldSelect, Options: []string{"Male", "Female", "Other"}},
			{Name: "date_of_birth", Label: "Date of Birth", Type: forms.FieldDate, Pattern: constvars.RegexDateYYYYMMDD},
			{Name: "phone", Label: "Phone Number", Type: forms.FieldText, Required: true, Pattern: constvars.RegexIndianMobileNumber},
			{Name: "aadhar", Label: "Aadhar Number", Type: forms.FieldText, Pattern: constvars.RegexAadharNumber},
			{Name: "address", Label: "Address", Type: forms.FieldTextarea},
			{Name: "blood_group", Label: "Blood Group", Type: forms.FieldSelect, Options: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}},
			{Name: "assigned_doctor_id", Label: "Assigned Doctor", Type: forms.FieldSearchableSelect},
			{Name: "medical_conditions", Label: "Medical Conditions", Type: forms.FieldTextarea},
		}},
	}
}

func StaffDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourceStaff,
		DisplayName:  "staff member",
		Path:         backendPath(internalConfig, constvars.ResourceStaff),
		SearchFields: []string{"name", "phone", "role"},
		FilterFields: []string{"role", "department"},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "name", Label: "Staff Name", Type: forms.FieldText, Required: true},
			{Name: "role", Label: "Role", Type: forms.FieldSelect, Required: true, Options: []string{"Doctor", "Nurse", "Technician", "Receptionist", "Pharmacist", "Accountant"}},
			{Name: "department", Label: "Department", Type: forms.FieldSearchableSelect},
			{Name: "phone", Label: "Phone Number", Type: forms.FieldText, Required: true, Pattern: constvars.RegexIndianMobileNumber},
			{Name: "email", Label: "Email", Type: forms.FieldText, Pattern: constvars.RegexEmail},
			{Name: "pan", Label: "PAN Code", Type: forms.FieldText, Pattern: constvars.RegexPANCode},
			{Name: "salary", Label: "Salary", Type: forms.FieldNumber},
		}},
	}
}

func AppointmentDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourceAppointment,
		DisplayName:  "appointment",
		Path:         backendPath(internalConfig, constvars.ResourceAppointment),
		SearchFields: []string{"patient_id", "doctor_id"},
		FilterFields: []string{"status", "department", "date"},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "patient_id", Label: "Patient", Type: forms.FieldSearchableSelect, Required: true},
			{Name: "doctor_id", Label: "Doctor", Type: forms.FieldSearchableSelect, Required: true},
			{Name: "department", Label: "Department", Type: forms.FieldSearchableSelect},
			{Name: "date", Label: "Date", Type: forms.FieldDate, Required: true, Pattern: constvars.RegexDateYYYYMMDD},
			{Name: "time", Label: "Time", Type: forms.FieldText, Required: true, Pattern: constvars.RegexTimeHHMM},
			{Name: "status", Label: "Status", Type: forms.FieldSelect, Required: true, Options: []string{constvars.AppointmentStatusScheduled, constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled}},
			{Name: "reason", Label: "Reason", Type: forms.FieldTextarea},
		}},
	}
}

func MedicineDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourceMedicine,
		DisplayName:  "medicine",
		Path:         backendPath(internalConfig, constvars.ResourceMedicine),
		SearchFields: []string{"name", "category"},
		FilterFields: []string{"category"},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "name", Label: "Medicine Name", Type: forms.FieldText, Required: true},
			{Name: "category", Label: "Category", Type: forms.FieldSelect, Options: []string{"Tablet", "Syrup", "Injection", "Ointment", "Other"}},
			{Name: "stock", Label: "Stock", Type: forms.FieldNumber, Required: true},
			{Name: "unit", Label: "Unit", Type: forms.FieldText},
			{Name: "price", Label: "Price", Type: forms.FieldNumber},
			{Name: "expiry_date", Label: "Expiry Date", Type: forms.FieldDate, Pattern: constvars.RegexDateYYYYMMDD},
		}},
	}
}

func InvoiceDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourceInvoice,
		DisplayName:  "invoice",
		Path:         backendPath(internalConfig, constvars.ResourceInvoice),
		SearchFields: []string{"patient_id", "description"},
		FilterFields: []string{"status"},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "patient_id", Label: "Patient", Type: forms.FieldSearchableSelect, Required: true},
			{Name: "description", Label: "Description", Type: forms.FieldTextarea},
			{Name: "amount", Label: "Amount", Type: forms.FieldNumber, Required: true},
			{Name: "status", Label: "Status", Type: forms.FieldSelect, Required: true, Options: []string{constvars.InvoiceStatusPaid, constvars.InvoiceStatusUnpaid}},
		}},
	}
}

func TransactionDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourceTransaction,
		DisplayName:  "transaction",
		Path:         backendPath(internalConfig, constvars.ResourceTransaction),
		SearchFields: []string{"category", "note"},
		FilterFields: []string{"type"},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "type", Label: "Type", Type: forms.FieldSelect, Required: true, Options: []string{constvars.TransactionTypeIncome, constvars.TransactionTypeExpense}},
			{Name: "category", Label: "Category", Type: forms.FieldText},
			{Name: "amount", Label: "Amount", Type: forms.FieldNumber, Required: true},
			{Name: "date", Label: "Date", Type: forms.FieldDate, Required: true, Pattern: constvars.RegexDateYYYYMMDD},
			{Name: "note", Label: "Note", Type: forms.FieldTextarea},
		}},
	}
}

func LabTestDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourceLabTest,
		DisplayName:  "lab test",
		Path:         backendPath(internalConfig, constvars.ResourceLabTest),
		SearchFields: []string{"test_name", "patient_id"},
		FilterFields: []string{"status"},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "patient_id", Label: "Patient", Type: forms.FieldSearchableSelect, Required: true},
			{Name: "test_name", Label: "Test Name", Type: forms.FieldText, Required: true},
			{Name: "status", Label: "Status", Type: forms.FieldSelect, Required: true, Options: []string{constvars.LabTestStatusPending, constvars.LabTestStatusSampleCollected, constvars.LabTestStatusProcessing, constvars.LabTestStatusCompleted}},
			{Name: "result", Label: "Result", Type: forms.FieldTextarea},
		}},
	}
}

func SettingsDescriptor(internalConfig *config.InternalConfig) Descriptor {
	return Descriptor{
		Name:         constvars.ResourceSettings,
		DisplayName:  "settings",
		Path:         backendPath(internalConfig, constvars.ResourceSettings),
		SearchFields: []string{"hospital_name"},
		FilterFields: []string{},
		Form: forms.Form{Fields: []forms.Field{
			{Name: "hospital_name", Label: "Hospital Name", Type: forms.FieldText, Required: true},
			{Name: "address_line", Label: "Address", Type: forms.FieldTextarea},
			{Name: "phone", Label: "Phone Number", Type: forms.FieldText, Pattern: constvars.RegexIndianMobileNumber},
			{Name: "email", Label: "Email", Type: forms.FieldText, Pattern: constvars.RegexEmail},
			{Name: "currency", Label: "Currency", Type: forms.FieldText},
		}},
	}
}
