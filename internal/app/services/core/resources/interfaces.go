package resources

import (
	"context"
	"mediboard-service/internal/pkg/dto/requests"
	"mediboard-service/internal/pkg/dto/responses"
	"mediboard-service/internal/pkg/hms_dto"
)

type Client[T hms_dto.Record] interface {
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft map[string]interface{}) (*T, error)
	Update(ctx context.Context, recordID string, draft map[string]interface{}) (*T, error)
	Delete(ctx context.Context, recordID string) error
}

type Usecase[T hms_dto.Record] interface {
	List(ctx context.Context, query requests.ListQuery) (*responses.ResourceList, error)
	Create(ctx context.Context, draft map[string]interface{}) (*T, *responses.Notification, error)
	Update(ctx context.Context, recordID string, draft map[string]interface{}) (*T, *responses.Notification, error)
	Delete(ctx context.Context, recordID string, confirmed bool) (*responses.Notification, error)
	Descriptor() Descriptor
}
