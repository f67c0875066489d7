package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/batch-service/internal/domain/model"
)

// batchIDSequence is the counter name used to allocate batch ids.
const batchIDSequence = "batch_id"

// BatchRepository provides MongoDB-backed batch persistence.
type BatchRepository struct {
	db *MongoDB
}

// NewBatchRepository creates a new batch repository.
func NewBatchRepository(db *MongoDB) *BatchRepository {
	return &BatchRepository{db: db}
}

// GetBatch fetches the current batch record.
func (r *BatchRepository) GetBatch(ctx context.Context, batchID int64) (*model.Batch, error) {
	var batch model.Batch
	err := r.db.Batches.FindOne(ctx, bson.M{"_id": batchID}).Decode(&batch)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// UpdateStatus writes a new batch status. Imported batches get their imported
// date stamped at the same time.
func (r *BatchRepository) UpdateStatus(ctx context.Context, batchID int64, status model.BatchStatus, userID int64) error {
	now := time.Now()
	set := bson.M{
		"status":      status,
		"modified_by": userID,
		"updated_at":  now,
	}
	if status == model.StatusImported {
		set["imported_date"] = now
	}

	result, err := r.db.Batches.UpdateOne(ctx, bson.M{"_id": batchID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrBatchNotFound
	}
	return nil
}

// ResetBatch detaches every pack from the batch and forces the batch back to
// PENDING. Pack system references are cleared together with the batch
// reference so the data stays consistent.
func (r *BatchRepository) ResetBatch(ctx context.Context, batchID, userID int64) error {
	now := time.Now()

	_, err := r.db.Packs.UpdateMany(
		ctx,
		bson.M{"batch_id": batchID},
		bson.M{
			"$unset": bson.M{"batch_id": "", "system_id": ""},
			"$set":   bson.M{"modified_by": userID, "updated_at": now},
		},
	)
	if err != nil {
		return err
	}

	return r.UpdateStatus(ctx, batchID, model.StatusPending, userID)
}

// ApplyPackAssignment creates or updates the batch and attaches the packs with
// their computed order numbers in one pass.
func (r *BatchRepository) ApplyPackAssignment(ctx context.Context, a PackAssignment) (model.BatchStatus, int64, error) {
	now := time.Now()
	batchID := a.BatchID
	status := a.Status

	if batchID == 0 {
		id, err := r.db.NextSequence(ctx, batchIDSequence)
		if err != nil {
			return "", 0, err
		}
		batchID = id

		batch := model.Batch{
			ID:         batchID,
			Name:       a.BatchName,
			SystemID:   a.SystemID,
			Status:     status,
			CreatedBy:  a.UserID,
			ModifiedBy: a.UserID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if a.ScheduledStartTime != nil {
			batch.ScheduledStartTime = a.ScheduledStartTime
		}
		if a.EstimatedProcessingTime != nil {
			batch.EstimatedProcessingTime = *a.EstimatedProcessingTime
		}
		if _, err := r.db.Batches.InsertOne(ctx, batch); err != nil {
			return "", 0, err
		}
	} else {
		set := bson.M{
			"name":        a.BatchName,
			"system_id":   a.SystemID,
			"status":      status,
			"modified_by": a.UserID,
			"updated_at":  now,
		}
		if status == model.StatusImported {
			set["imported_date"] = now
		}
		if a.ScheduledStartTime != nil {
			set["scheduled_start_time"] = a.ScheduledStartTime
		}
		if a.EstimatedProcessingTime != nil {
			set["estimated_processing_time"] = *a.EstimatedProcessingTime
		}
		result, err := r.db.Batches.UpdateOne(ctx, bson.M{"_id": batchID}, bson.M{"$set": set})
		if err != nil {
			return "", 0, err
		}
		if result.MatchedCount == 0 {
			return "", 0, ErrBatchNotFound
		}
	}

	if len(a.PackList) > 0 {
		writes := make([]mongo.WriteModel, 0, len(a.PackList))
		for i, packID := range a.PackList {
			set := bson.M{
				"batch_id":    batchID,
				"system_id":   a.SystemID,
				"order_no":    a.OrderNumbers[i],
				"modified_by": a.UserID,
				"updated_at":  now,
			}
			if a.ScheduledStartTime != nil {
				set["scheduled_start_time"] = a.ScheduledStartTime
			}
			writes = append(writes, mongo.NewUpdateOneModel().
				SetFilter(bson.M{"_id": packID}).
				SetUpdate(bson.M{"$set": set}))
		}
		if _, err := r.db.Packs.BulkWrite(ctx, writes); err != nil {
			return "", 0, err
		}
	}

	return status, batchID, nil
}

// GetBatchIDsBySystem lists the batch ids owned by a system.
func (r *BatchRepository) GetBatchIDsBySystem(ctx context.Context, systemID int64) ([]int64, error) {
	values, err := r.db.Batches.Distinct(ctx, "_id", bson.M{"system_id": systemID})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		switch id := v.(type) {
		case int64:
			ids = append(ids, id)
		case int32:
			ids = append(ids, int64(id))
		}
	}
	return ids, nil
}

// ActiveSystems returns the systems among systemIDs that still have a batch in
// flight, meaning any status other than IMPORTED or PROCESSING_COMPLETE.
func (r *BatchRepository) ActiveSystems(ctx context.Context, systemIDs []int64) ([]int64, error) {
	filter := bson.M{
		"system_id": bson.M{"$in": systemIDs},
		"status": bson.M{"$nin": bson.A{
			model.StatusImported,
			model.StatusProcessingComplete,
		}},
	}
	values, err := r.db.Batches.Distinct(ctx, "system_id", filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		switch id := v.(type) {
		case int64:
			ids = append(ids, id)
		case int32:
			ids = append(ids, int64(id))
		}
	}
	return ids, nil
}

// WithTransaction runs fn inside a single MongoDB transaction. The order-number
// read and the pack assignment write share the transaction, which closes the
// race two concurrent assignment calls would otherwise have on colliding order
// numbers.
func (r *BatchRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.db.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
