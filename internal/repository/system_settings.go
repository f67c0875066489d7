package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/batch-service/internal/domain/model"
)

// SystemSettingsRepository provides MongoDB-backed throughput configuration.
type SystemSettingsRepository struct {
	db *MongoDB
}

// NewSystemSettingsRepository creates a new system settings repository.
func NewSystemSettingsRepository(db *MongoDB) *SystemSettingsRepository {
	return &SystemSettingsRepository{db: db}
}

// ThroughputConfig fetches a system's capacity configuration.
func (r *SystemSettingsRepository) ThroughputConfig(ctx context.Context, systemID int64) (*model.ThroughputConfig, error) {
	var cfg model.ThroughputConfig
	err := r.db.SystemSettings.FindOne(ctx, bson.M{"system_id": systemID}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Upsert writes a system's throughput configuration, creating the settings
// document when the system has none yet.
func (r *SystemSettingsRepository) Upsert(ctx context.Context, cfg model.ThroughputConfig) error {
	_, err := r.db.SystemSettings.UpdateOne(
		ctx,
		bson.M{"system_id": cfg.SystemID},
		bson.M{"$set": cfg},
		options.Update().SetUpsert(true),
	)
	return err
}
