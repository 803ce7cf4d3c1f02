package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "requestID"
)

const (
	URLParamRecordID  = "recordID"
	URLParamLabTestID = "labTestID"

	QueryParamSearch  = "search"
	QueryParamSort    = "sort"
	QueryParamOrder   = "order"
	QueryParamConfirm = "confirm"

	SortOrderAscending  = "asc"
	SortOrderDescending = "desc"
)

const (
	NotificationLevelSuccess = "success"
	NotificationLevelError   = "error"
)
