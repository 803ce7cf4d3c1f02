package dashboard

import (
	"context"
	"mediboard-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	Summary(ctx context.Context) (*responses.DashboardSummary, error)
}
