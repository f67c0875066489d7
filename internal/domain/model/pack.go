package model

import "time"

// Pack is the unit of work: a single patient medication package. A pack
// belongs to at most one batch at a time; a nil BatchID means the pack is
// unassigned (manual fill).
type Pack struct {
	ID      int64  `bson:"_id" json:"id"`
	BatchID *int64 `bson:"batch_id,omitempty" json:"batch_id,omitempty"`
	// SystemID is cleared together with BatchID on reset so the two stay
	// consistent.
	SystemID *int64 `bson:"system_id,omitempty" json:"system_id,omitempty"`
	// CompanyID scopes ownership. A pack may only be attached to a batch
	// within the same company.
	CompanyID int64 `bson:"company_id" json:"company_id"`
	// OrderNo is the pack's position within its batch's processing queue,
	// unique per system and assigned monotonically from the system maximum.
	OrderNo            int        `bson:"order_no" json:"order_no"`
	ScheduledStartTime *time.Time `bson:"scheduled_start_time,omitempty" json:"scheduled_start_time,omitempty"`
	ModifiedBy         int64      `bson:"modified_by" json:"modified_by"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at" json:"updated_at"`
}

// PackSummary is the per-pack view returned when packs are queried grouped
// by batch.
type PackSummary struct {
	ID                 int64      `bson:"_id" json:"id"`
	OrderNo            int        `bson:"order_no" json:"order_no"`
	ScheduledStartTime *time.Time `bson:"scheduled_start_time,omitempty" json:"scheduled_start_time,omitempty"`
}
