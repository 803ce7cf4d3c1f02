package constvars

const (
	// RegexIndianMobileNumber matches 10-digit mobile numbers starting with 6-9.
	RegexIndianMobileNumber = `^[6-9]\d{9}$`
	// RegexAadharNumber matches 12-digit national identity numbers.
	RegexAadharNumber = `^\d{12}$`
	// RegexPANCode matches uppercase 10-character alphanumeric tax codes.
	RegexPANCode = `^[A-Z0-9]{10}$`

	RegexEmail        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexNumeric      = `^\d+$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM     = `^\d{2}:\d{2}$`
)
