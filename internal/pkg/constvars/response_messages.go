package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	ListFetchedSuccess    = "%s fetched successfully"
	RecordCreatedSuccess  = "%s created successfully"
	RecordUpdatedSuccess  = "%s updated successfully"
	RecordDeletedSuccess  = "%s deleted successfully"
	EmptyListMessage      = "No records found, try adjusting your search or filters"
	WorkflowActionSuccess = "lab test moved to %s"
	ReportUploadedSuccess = "lab report uploaded successfully"
	DashboardFetchSuccess = "dashboard summary fetched successfully"
)
