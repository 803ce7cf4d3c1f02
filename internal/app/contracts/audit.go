package contracts

import (
	"context"
	"mediboard-service/internal/app/models"
)

type AuditRepository interface {
	Insert(ctx context.Context, entry models.AuditEntry) error
}
