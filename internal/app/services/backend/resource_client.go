package backend

import (
	"context"
	"fmt"
	"mediboard-service/internal/app/contracts"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/hms_dto"
	"mediboard-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ResourceClient is the one CRUD client every resource screen shares. The
// backend decides each record's shape; this client only knows the collection
// path and the identifier.
type ResourceClient[T hms_dto.Record] struct {
	Rest     contracts.RestClient
	Resource string
	Path     string
	Log      *zap.Logger
}

func NewResourceClient[T hms_dto.Record](rest contracts.RestClient, resource, path string, logger *zap.Logger) *ResourceClient[T] {
	return &ResourceClient[T]{
		Rest:     rest,
		Resource: resource,
		Path:     path,
		Log:      logger,
	}
}

// FindAll fetches the entire collection in one GET; the backend does not
// paginate, so the list is fully repopulated on every fetch.
func (c *ResourceClient[T]) FindAll(ctx context.Context) ([]T, error) {
	requestID := utils.RequestIDFromContext(ctx)

	body, err := c.Rest.DoRequest(ctx, constvars.MethodGet, c.Path, nil)
	if err != nil {
		return nil, err
	}

	records, err := decodeCollection[T](body)
	if err != nil {
		c.Log.Error("ResourceClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, c.Resource),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, c.Resource)
	}

	c.Log.Info("ResourceClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, c.Resource),
		zap.Int(constvars.LoggingRecordCountKey, len(records)),
	)
	return records, nil
}

// Create posts the draft and returns the record the backend assigned an
// identifier to. Empty-string fields are dropped from the payload before it
// leaves the console.
func (c *ResourceClient[T]) Create(ctx context.Context, draft map[string]interface{}) (*T, error) {
	payload, err := json.Marshal(NormalizeDraft(draft))
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := c.Rest.DoRequest(ctx, constvars.MethodPost, c.Path, payload)
	if err != nil {
		return nil, err
	}
	return c.decodeRecord(ctx, body)
}

func (c *ResourceClient[T]) Update(ctx context.Context, recordID string, draft map[string]interface{}) (*T, error) {
	payload, err := json.Marshal(NormalizeDraft(draft))
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := c.Rest.DoRequest(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", c.Path, recordID), payload)
	if err != nil {
		return nil, err
	}
	return c.decodeRecord(ctx, body)
}

func (c *ResourceClient[T]) Delete(ctx context.Context, recordID string) error {
	_, err := c.Rest.DoRequest(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", c.Path, recordID), nil)
	return err
}

func (c *ResourceClient[T]) decodeRecord(ctx context.Context, body []byte) (*T, error) {
	var record T
	if len(body) > 0 {
		if err := json.Unmarshal(body, &record); err != nil {
			c.Log.Error("ResourceClient error decoding record",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
				zap.String(constvars.LoggingResourceKey, c.Resource),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeResponse(err, c.Resource)
		}
	}
	return &record, nil
}

// decodeCollection accepts both list shapes the backend serves: a bare JSON
// array and a {"data": [...]} envelope.
func decodeCollection[T hms_dto.Record](body []byte) ([]T, error) {
	var records []T
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// NormalizeDraft drops fields whose value is the empty string so optional
// inputs left blank in a form are omitted from the payload entirely.
func NormalizeDraft(draft map[string]interface{}) map[string]interface{} {
	normalized := make(map[string]interface{}, len(draft))
	for field, value := range draft {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		normalized[field] = value
	}
	return normalized
}
