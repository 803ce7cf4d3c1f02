package audit

import (
	"context"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/contracts"
	"mediboard-service/internal/app/models"
	"mediboard-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoAuditRepository struct {
	collection *mongo.Collection
}

func NewMongoAuditRepository(db *mongo.Database, internalConfig *config.InternalConfig) contracts.AuditRepository {
	return &mongoAuditRepository{
		collection: db.Collection(internalConfig.Audit.CollectionName),
	}
}

func (r *mongoAuditRepository) Insert(ctx context.Context, entry models.AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
