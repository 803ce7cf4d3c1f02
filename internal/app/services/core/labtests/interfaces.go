package labtests

import (
	"context"
	"mediboard-service/internal/pkg/dto/requests"
	"mediboard-service/internal/pkg/dto/responses"
	"mime/multipart"
)

type LabTestUsecase interface {
	Actions(ctx context.Context, labTestID string) (*responses.LabTestWorkflowResponse, error)
	Transition(ctx context.Context, labTestID string, request *requests.LabTestTransitionRequest) (*responses.LabTestWorkflowResponse, *responses.Notification, error)
	AttachReport(ctx context.Context, labTestID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.LabTestReportResponse, *responses.Notification, error)
}
