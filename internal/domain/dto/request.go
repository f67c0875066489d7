// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"time"

	"github.com/guttosm/batch-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingUserID is returned when user_id is absent.
	ErrMissingUserID = &ValidationError{Field: "user_id", Message: "is required"}
	// ErrMissingSystemID is returned when system_id is absent.
	ErrMissingSystemID = &ValidationError{Field: "system_id", Message: "is required"}
	// ErrMissingBatchName is returned when batch_name is absent on a request
	// that attaches packs.
	ErrMissingBatchName = &ValidationError{Field: "batch_name", Message: "is required"}
	// ErrMissingCompanyID is returned when a pack list is supplied without the
	// owning company.
	ErrMissingCompanyID = &ValidationError{Field: "company_id", Message: "is required when pack_list is provided"}
	// ErrMissingScheduledStart is returned when scheduled_start_time is absent
	// on a multi-batch request.
	ErrMissingScheduledStart = &ValidationError{Field: "scheduled_start_time", Message: "is required"}
	// ErrInvalidStatus is returned when an unknown batch status is supplied.
	ErrInvalidStatus = &ValidationError{Field: "status", Message: "is not a valid batch status"}
)

// CreateBatchRequest is the request body for single-batch assignment.
//
// BatchID of zero means a new batch is created by the persistence layer.
// Status, when set, combined with a non-zero BatchID and an empty PackList,
// makes this a pure status update.
type CreateBatchRequest struct {
	PackList []int64 `json:"pack_list"`
	UserID   int64   `json:"user_id" binding:"required"`
	SystemID int64   `json:"system_id" binding:"required"`
	BatchID  int64   `json:"batch_id,omitempty"`
	// BatchName is required unless this is a pure status update.
	BatchName string `json:"batch_name,omitempty"`
	CompanyID int64  `json:"company_id,omitempty"`
	// Reset forces the batch back to PENDING and detaches its packs before
	// applying the new assignment.
	Reset  bool              `json:"reset,omitempty"`
	Status model.BatchStatus `json:"status,omitempty"`
	// CRM marks the caller as the external system-of-record, which is allowed
	// to bypass the import-revert guard.
	CRM bool `json:"crm,omitempty"`
}

// StatusUpdateOnly reports whether the request carries only a status change
// for an existing batch.
func (r *CreateBatchRequest) StatusUpdateOnly() bool {
	return r.Status != "" && r.BatchID != 0 && len(r.PackList) == 0 && !r.Reset
}

// Validate performs field-level validation on the request.
func (r *CreateBatchRequest) Validate() error {
	if r.UserID == 0 {
		return ErrMissingUserID
	}
	if r.SystemID == 0 {
		return ErrMissingSystemID
	}
	if r.Status != "" && !r.Status.Valid() {
		return ErrInvalidStatus
	}
	if r.StatusUpdateOnly() {
		return nil
	}
	if r.BatchName == "" {
		return ErrMissingBatchName
	}
	if len(r.PackList) > 0 && r.CompanyID == 0 {
		return ErrMissingCompanyID
	}
	return nil
}

// CreateMultiBatchRequest is the request body for multi-batch assignment.
// Unlike the single-batch path, scheduling metadata is mandatory and the
// pack ordering is re-derived from persistence rather than trusted from the
// caller.
type CreateMultiBatchRequest struct {
	PackList  []int64 `json:"pack_list"`
	UserID    int64   `json:"user_id" binding:"required"`
	SystemID  int64   `json:"system_id" binding:"required"`
	BatchID   int64   `json:"batch_id,omitempty"`
	BatchName string  `json:"batch_name,omitempty"`
	CompanyID int64   `json:"company_id,omitempty"`
	Reset     bool    `json:"reset,omitempty"`
	Status    model.BatchStatus `json:"status,omitempty"`
	CRM       bool              `json:"crm,omitempty"`

	ScheduledStartTime      *time.Time `json:"scheduled_start_time" binding:"required"`
	EstimatedProcessingTime float64    `json:"estimated_processing_time"`
}

// StatusUpdateOnly reports whether the request carries only a status change
// for an existing batch.
func (r *CreateMultiBatchRequest) StatusUpdateOnly() bool {
	return r.Status != "" && r.BatchID != 0 && len(r.PackList) == 0 && !r.Reset
}

// Validate performs field-level validation on the request.
func (r *CreateMultiBatchRequest) Validate() error {
	if r.UserID == 0 {
		return ErrMissingUserID
	}
	if r.SystemID == 0 {
		return ErrMissingSystemID
	}
	if r.Status != "" && !r.Status.Valid() {
		return ErrInvalidStatus
	}
	if r.StatusUpdateOnly() {
		return nil
	}
	if r.ScheduledStartTime == nil {
		return ErrMissingScheduledStart
	}
	if r.BatchName == "" {
		return ErrMissingBatchName
	}
	if len(r.PackList) > 0 && r.CompanyID == 0 {
		return ErrMissingCompanyID
	}
	return nil
}

// SystemStatusRequest asks whether each listed system is idle.
type SystemStatusRequest struct {
	SystemIDs []int64 `json:"system_ids" binding:"required,min=1"`
}
