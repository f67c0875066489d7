package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/batch-service/internal/domain/model"
)

// PackRepository provides MongoDB-backed pack persistence.
type PackRepository struct {
	db *MongoDB
}

// NewPackRepository creates a new pack repository.
func NewPackRepository(db *MongoDB) *PackRepository {
	return &PackRepository{db: db}
}

// VerifyPackListByCompany reports whether every pack in packList belongs to
// the given company.
func (r *PackRepository) VerifyPackListByCompany(ctx context.Context, companyID int64, packList []int64) (bool, error) {
	if len(packList) == 0 {
		return true, nil
	}

	count, err := r.db.Packs.CountDocuments(ctx, bson.M{
		"_id":        bson.M{"$in": packList},
		"company_id": companyID,
	})
	if err != nil {
		return false, err
	}
	return count == int64(len(packList)), nil
}

// MaxOrderNo returns the highest order number assigned within the system, or
// zero when the system has no ordered packs yet.
func (r *PackRepository) MaxOrderNo(ctx context.Context, systemID int64) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "order_no", Value: -1}}).
		SetProjection(bson.M{"order_no": 1})

	var doc struct {
		OrderNo int `bson:"order_no"`
	}
	err := r.db.Packs.FindOne(ctx, bson.M{"system_id": systemID}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.OrderNo, nil
}

// GetOrderedPackList canonicalizes a possibly unordered pack id list into
// persisted queue order. Ids unknown to the persistence layer are dropped,
// which also defends against stale client-submitted lists.
func (r *PackRepository) GetOrderedPackList(ctx context.Context, packList []int64) ([]int64, error) {
	if len(packList) == 0 {
		return nil, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "order_no", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1})

	cursor, err := r.db.Packs.Find(ctx, bson.M{"_id": bson.M{"$in": packList}}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []struct {
		ID int64 `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ordered := make([]int64, 0, len(docs))
	for _, d := range docs {
		ordered = append(ordered, d.ID)
	}
	return ordered, nil
}

// CountAssigned returns how many of the given packs already carry a batch id.
func (r *PackRepository) CountAssigned(ctx context.Context, packList []int64) (int64, error) {
	if len(packList) == 0 {
		return 0, nil
	}
	return r.db.Packs.CountDocuments(ctx, bson.M{
		"_id":      bson.M{"$in": packList},
		"batch_id": bson.M{"$exists": true, "$ne": nil},
	})
}

// GetPacksByBatchIDs returns pack summaries grouped by batch id, each group
// sorted by queue order.
func (r *PackRepository) GetPacksByBatchIDs(ctx context.Context, batchIDs []int64) (map[int64][]model.PackSummary, error) {
	if len(batchIDs) == 0 {
		return map[int64][]model.PackSummary{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "order_no", Value: 1}})
	cursor, err := r.db.Packs.Find(ctx, bson.M{"batch_id": bson.M{"$in": batchIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	grouped := make(map[int64][]model.PackSummary)
	for cursor.Next(ctx) {
		var pack model.Pack
		if err := cursor.Decode(&pack); err != nil {
			return nil, err
		}
		if pack.BatchID == nil {
			continue
		}
		grouped[*pack.BatchID] = append(grouped[*pack.BatchID], model.PackSummary{
			ID:                 pack.ID,
			OrderNo:            pack.OrderNo,
			ScheduledStartTime: pack.ScheduledStartTime,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return grouped, nil
}
