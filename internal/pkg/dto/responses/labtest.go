package responses

import "mediboard-service/internal/pkg/hms_dto"

type LabTestWorkflowResponse struct {
	LabTest          hms_dto.LabTest `json:"lab_test"`
	AvailableActions []string        `json:"available_actions"`
}

type LabTestReportResponse struct {
	LabTestID    string `json:"lab_test_id"`
	ReportObject string `json:"report_object"`
}
