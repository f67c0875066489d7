// Package model defines the core domain entities for the batch service.
package model

import "time"

// Batch represents a named, ordered collection of production packs scheduled
// to run together through automated filling equipment.
type Batch struct {
	ID int64 `bson:"_id" json:"id"`
	// Name is the human-readable batch label.
	Name string `bson:"name" json:"name"`
	// SystemID identifies the production system that owns the batch.
	// Immutable after creation.
	SystemID int64       `bson:"system_id" json:"system_id"`
	Status   BatchStatus `bson:"status" json:"status"`
	// ScheduledStartTime is when the batch is planned to start filling.
	ScheduledStartTime *time.Time `bson:"scheduled_start_time,omitempty" json:"scheduled_start_time,omitempty"`
	// EstimatedProcessingTime is the projected processing hours for the batch,
	// recomputed whenever its pack set changes.
	EstimatedProcessingTime float64   `bson:"estimated_processing_time" json:"estimated_processing_time"`
	ImportedDate            *time.Time `bson:"imported_date,omitempty" json:"imported_date,omitempty"`
	CreatedBy               int64     `bson:"created_by" json:"created_by"`
	ModifiedBy              int64     `bson:"modified_by" json:"modified_by"`
	CreatedAt               time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt               time.Time `bson:"updated_at" json:"updated_at"`
}

// BatchPackGroup is the query result for one batch: its packs in queue order
// plus the freshly recomputed processing-time estimate.
type BatchPackGroup struct {
	BatchID        int64         `json:"batch_id"`
	EstimatedHours float64       `json:"estimated_processing_time"`
	Packs          []PackSummary `json:"packs"`
}
