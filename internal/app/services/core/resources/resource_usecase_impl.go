package resources

import (
	"context"
	"errors"
	"fmt"
	"mediboard-service/internal/app/contracts"
	"mediboard-service/internal/app/models"
	"mediboard-service/internal/app/services/shared/listview"
	"mediboard-service/internal/app/services/shared/notifier"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/requests"
	"mediboard-service/internal/pkg/dto/responses"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/hms_dto"
	"mediboard-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type resourceUsecase[T hms_dto.Record] struct {
	Client          Client[T]
	Cache           contracts.ResourceCache
	Notifier        contracts.Notifier
	AuditRepository contracts.AuditRepository
	Desc            Descriptor
	Log             *zap.Logger
}

// NewResourceUsecase wires one resource screen: fetch-and-query on the read
// side, validate-submit-invalidate-notify on the write side. Every resource
// in the catalog shares this implementation.
func NewResourceUsecase[T hms_dto.Record](
	client Client[T],
	resourceCache contracts.ResourceCache,
	notifierService contracts.Notifier,
	auditRepository contracts.AuditRepository,
	descriptor Descriptor,
	logger *zap.Logger,
) Usecase[T] {
	return &resourceUsecase[T]{
		Client:          client,
		Cache:           resourceCache,
		Notifier:        notifierService,
		AuditRepository: auditRepository,
		Desc:            descriptor,
		Log:             logger,
	}
}

func (uc *resourceUsecase[T]) Descriptor() Descriptor {
	return uc.Desc
}

func (uc *resourceUsecase[T]) List(ctx context.Context, query requests.ListQuery) (*responses.ResourceList, error) {
	utils.SanitizeListQuery(&query)
	query.Filters = uc.allowedFilters(query.Filters)

	records, err := uc.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := listview.Apply(records, query, uc.Desc.SearchFields)

	list := &responses.ResourceList{
		Items: filtered,
		Total: len(filtered),
	}
	if len(filtered) == 0 {
		list.EmptyMessage = constvars.EmptyListMessage
	}
	return list, nil
}

func (uc *resourceUsecase[T]) Create(ctx context.Context, draft map[string]interface{}) (*T, *responses.Notification, error) {
	utils.SanitizeDraft(draft)
	if err := uc.Desc.Form.Validate(draft); err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	record, err := uc.Client.Create(ctx, draft)
	if err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	uc.invalidateCache(ctx)
	notification := uc.notify(ctx, fmt.Sprintf(constvars.RecordCreatedSuccess, uc.Desc.DisplayName))
	uc.audit(ctx, models.AuditActionCreate, (*record).RecordID())
	return record, &notification, nil
}

func (uc *resourceUsecase[T]) Update(ctx context.Context, recordID string, draft map[string]interface{}) (*T, *responses.Notification, error) {
	utils.SanitizeDraft(draft)
	if err := uc.Desc.Form.Validate(draft); err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	record, err := uc.Client.Update(ctx, recordID, draft)
	if err != nil {
		uc.notifyError(ctx, err)
		return nil, nil, err
	}

	uc.invalidateCache(ctx)
	notification := uc.notify(ctx, fmt.Sprintf(constvars.RecordUpdatedSuccess, uc.Desc.DisplayName))
	uc.audit(ctx, models.AuditActionUpdate, recordID)
	return record, &notification, nil
}

// Delete refuses to touch the backend until the caller has confirmed, the
// gateway equivalent of the confirmation dialog in front of every delete
// button.
func (uc *resourceUsecase[T]) Delete(ctx context.Context, recordID string, confirmed bool) (*responses.Notification, error) {
	if !confirmed {
		err := exceptions.ErrDeleteNotConfirmed()
		uc.notifyError(ctx, err)
		return nil, err
	}

	if err := uc.Client.Delete(ctx, recordID); err != nil {
		uc.notifyError(ctx, err)
		return nil, err
	}

	uc.invalidateCache(ctx)
	notification := uc.notify(ctx, fmt.Sprintf(constvars.RecordDeletedSuccess, uc.Desc.DisplayName))
	uc.audit(ctx, models.AuditActionDelete, recordID)
	return &notification, nil
}

// fetchAll reads through the shared cache. A cache failure falls back to the
// backend; a cache write failure is logged and forgotten.
func (uc *resourceUsecase[T]) fetchAll(ctx context.Context) ([]T, error) {
	requestID := utils.RequestIDFromContext(ctx)

	payload, hit, err := uc.Cache.GetList(ctx, uc.Desc.Name)
	if err != nil {
		uc.Log.Warn("resourceUsecase.fetchAll cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, uc.Desc.Name),
			zap.Error(err),
		)
	}
	if hit {
		var records []T
		if err := json.Unmarshal(payload, &records); err == nil {
			uc.Log.Debug("resourceUsecase.fetchAll served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, uc.Desc.Name),
				zap.Bool(constvars.LoggingCacheHitKey, true),
			)
			return records, nil
		}
	}

	records, err := uc.Client.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(records); err == nil {
		if err := uc.Cache.SetList(ctx, uc.Desc.Name, payload); err != nil {
			uc.Log.Warn("resourceUsecase.fetchAll cache write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, uc.Desc.Name),
				zap.Error(err),
			)
		}
	}
	return records, nil
}

func (uc *resourceUsecase[T]) allowedFilters(submitted map[string]string) map[string]string {
	filters := make(map[string]string)
	for _, field := range uc.Desc.FilterFields {
		if value, ok := submitted[field]; ok && value != "" {
			filters[field] = value
		}
	}
	return filters
}

func (uc *resourceUsecase[T]) invalidateCache(ctx context.Context) {
	if err := uc.Cache.Invalidate(ctx, uc.Desc.Name); err != nil {
		uc.Log.Warn("resourceUsecase cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingResourceKey, uc.Desc.Name),
			zap.Error(err),
		)
	}
}

// notifyError publishes the error-level toast for a failed mutation. The
// envelope's notification is built by the response writer; this keeps the
// queue in step with it.
func (uc *resourceUsecase[T]) notifyError(ctx context.Context, cause error) {
	message := constvars.ErrClientSomethingWrongWithApplication
	var customErr *exceptions.CustomError
	if errors.As(cause, &customErr) {
		message = customErr.ClientMessage
	}

	notification := notifier.NewErrorNotification(message, uc.Desc.Name)
	if err := uc.Notifier.Publish(ctx, notification); err != nil {
		uc.Log.Warn("resourceUsecase error notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingResourceKey, uc.Desc.Name),
			zap.Error(err),
		)
	}
}

func (uc *resourceUsecase[T]) notify(ctx context.Context, message string) responses.Notification {
	notification := notifier.NewSuccessNotification(message, uc.Desc.Name)
	if err := uc.Notifier.Publish(ctx, notification); err != nil {
		uc.Log.Warn("resourceUsecase notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingResourceKey, uc.Desc.Name),
			zap.Error(err),
		)
	}
	return notification
}

func (uc *resourceUsecase[T]) audit(ctx context.Context, action, recordID string) {
	entry := models.AuditEntry{
		Action:    action,
		Resource:  uc.Desc.Name,
		RecordID:  recordID,
		RequestID: utils.RequestIDFromContext(ctx),
	}
	if err := uc.AuditRepository.Insert(ctx, entry); err != nil {
		uc.Log.Warn("resourceUsecase audit insert failed",
			zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
			zap.String(constvars.LoggingResourceKey, uc.Desc.Name),
			zap.Error(err),
		)
	}
}
