package labtests

import (
	"context"
	"errors"
	"fmt"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/contracts"
	"mediboard-service/internal/app/models"
	"mediboard-service/internal/app/services/core/resources"
	"mediboard-service/internal/app/services/shared/notifier"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/requests"
	"mediboard-service/internal/pkg/dto/responses"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/hms_dto"
	"mediboard-service/internal/pkg/utils"
	"mime/multipart"

	"go.uber.org/zap"
)

type labTestUsecase struct {
	Client          resources.Client[hms_dto.LabTest]
	Cache           contracts.ResourceCache
	Notifier        contracts.Notifier
	AuditRepository contracts.AuditRepository
	Storage         contracts.ObjectStorage
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewLabTestUsecase(
	client resources.Client[hms_dto.LabTest],
	resourceCache contracts.ResourceCache,
	notifierService contracts.Notifier,
	auditRepository contracts.AuditRepository,
	objectStorage contracts.ObjectStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) LabTestUsecase {
	return &labTestUsecase{
		Client:          client,
		Cache:           resourceCache,
		Notifier:        notifierService,
		AuditRepository: auditRepository,
		Storage:         objectStorage,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *labTestUsecase) Actions(ctx context.Context, labTestID string) (*responses.LabTestWorkflowResponse, error) {
	labTest, err := uc.findLabTest(ctx, labTestID)
	if err != nil {
		return nil, err
	}
	return &responses.LabTestWorkflowResponse{
		LabTest:          *labTest,
		AvailableActions: AvailableActions(*labTest),
	}, nil
}

// Transition re-fetches the record before evaluating the guard so the
// decision is made against the backend's current state, not a stale copy
// held by some open screen.
func (uc *labTestUsecase) Transition(ctx context.Context, labTestID string, request *requests.LabTestTransitionRequest) (*responses.LabTestWorkflowResponse, *responses.Notification, error) {
	if err := utils.ValidateStruct(request); err != nil {
		validationErr := exceptions.ErrInputValidation(err)
		uc.notifyError(ctx, validationErr)
		return nil, nil, validationErr
	}

	labTest, err := uc.findLabTest(ctx, labTestID)
	if err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	next, err := NextState(*labTest, Action(request.Action))
	if err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	updated, err := uc.Client.Update(ctx, labTestID, map[string]interface{}{
		"status": next.Status,
		"billed": next.Billed,
	})
	if err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	uc.invalidateCache(ctx)
	notification := uc.notify(ctx, fmt.Sprintf(constvars.WorkflowActionSuccess, next.Status))
	uc.audit(ctx, models.AuditActionTransition, labTestID)

	uc.Log.Info("labTestUsecase.Transition succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, labTestID),
		zap.String(constvars.LoggingActionKey, request.Action),
	)
	return &responses.LabTestWorkflowResponse{
		LabTest:          *updated,
		AvailableActions: AvailableActions(*updated),
	}, &notification, nil
}

func (uc *labTestUsecase) AttachReport(ctx context.Context, labTestID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.LabTestReportResponse, *responses.Notification, error) {
	maxSizeMB := uc.InternalConfig.Storage.ReportMaxUploadSizeInMB
	if fileHeader.Size > maxSizeMB*1024*1024 {
		sizeErr := exceptions.ErrUploadedFileTooLarge(maxSizeMB)
		uc.notifyError(ctx, sizeErr)
		return nil, nil, sizeErr
	}

	if _, err := uc.findLabTest(ctx, labTestID); err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	objectName, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.InternalConfig.Storage.ReportBucketName)
	if err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	if _, err := uc.Client.Update(ctx, labTestID, map[string]interface{}{"report_object": objectName}); err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	uc.invalidateCache(ctx)
	notification := uc.notify(ctx, constvars.ReportUploadedSuccess)
	uc.audit(ctx, models.AuditActionUpload, labTestID)

	uc.Log.Info("labTestUsecase.AttachReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, labTestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.LabTestReportResponse{
		LabTestID:    labTestID,
		ReportObject: objectName,
	}, &notification, nil
}

// findLabTest locates the record inside the full collection; the backend does
// not serve single records.
func (uc *labTestUsecase) findLabTest(ctx context.Context, labTestID string) (*hms_dto.LabTest, error) {
	labTests, err := uc.Client.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range labTests {
		if labTests[i].ID == labTestID {
			return &labTests[i], nil
		}
	}
	return nil, exceptions.ErrRecordNotFound(labTestID, constvars.ResourceLabTest)
}

func (uc *labTestUsecase) invalidateCache(ctx context.Context) {
	if err := uc.Cache.Invalidate(ctx, constvars.ResourceLabTest); err != nil {
		uc.Log.Warn("labTestUsecase cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}

func (uc *labTestUsecase) notifyError(ctx context.Context, cause error) {
	message := constvars.ErrClientSomethingWrongWithApplication
	var customErr *exceptions.CustomError
	if errors.As(cause, &customErr) {
		message = customErr.ClientMessage
	}

	notification := notifier.NewErrorNotification(message, constvars.ResourceLabTest)
	if err := uc.Notifier.Publish(ctx, notification); err != nil {
		uc.Log.Warn("labTestUsecase error notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}

func (uc *labTestUsecase) notify(ctx context.Context, message string) responses.Notification {
	notification := notifier.NewSuccessNotification(message, constvars.ResourceLabTest)
	if err := uc.Notifier.Publish(ctx, notification); err != nil {
		uc.Log.Warn("labTestUsecase notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
	return notification
}

func (uc *labTestUsecase) audit(ctx context.Context, action, labTestID string) {
	entry := models.AuditEntry{
		Action:    action,
		Resource:  constvars.ResourceLabTest,
		RecordID:  labTestID,
		RequestID: utils.RequestIDFromContext(ctx),
	}
	if err := uc.AuditRepository.Insert(ctx, entry); err != nil {
		uc.Log.Warn("labTestUsecase audit insert failed",
			zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
			zap.Error(err),
		)
	}
}
