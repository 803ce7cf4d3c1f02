package contracts

import (
	"context"
	"mediboard-service/internal/pkg/dto/responses"
)

// Notifier publishes operation-outcome notifications. Publishing is
// fire-and-forget; callers log failures and move on.
type Notifier interface {
	Publish(ctx context.Context, notification responses.Notification) error
}
