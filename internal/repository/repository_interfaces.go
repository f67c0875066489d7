// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/batch-service/internal/domain/model"
)

// Sentinel errors returned by repository implementations. The service layer
// translates these into its own error taxonomy; raw driver errors never cross
// the service boundary.
var (
	// ErrBatchNotFound is returned when a referenced batch id does not exist.
	ErrBatchNotFound = errors.New("batch not found")
	// ErrSettingsNotFound is returned when a system has no throughput
	// configuration.
	ErrSettingsNotFound = errors.New("system settings not found")
)

// PackAssignment is the full set of fields written when packs are attached to
// a batch. A zero BatchID means the persistence layer creates the batch and
// assigns its id.
type PackAssignment struct {
	BatchID   int64
	SystemID  int64
	UserID    int64
	BatchName string
	Status    model.BatchStatus
	PackList  []int64
	// OrderNumbers holds the queue position per pack, parallel to PackList.
	OrderNumbers []int
	// ScheduledStartTime and EstimatedProcessingTime are set on the
	// multi-batch path only.
	ScheduledStartTime      *time.Time
	EstimatedProcessingTime *float64
}

// BatchRepositoryInterface defines the persistence contract for batches.
type BatchRepositoryInterface interface {
	// GetBatch fetches the current batch record, failing with ErrBatchNotFound
	// if absent.
	GetBatch(ctx context.Context, batchID int64) (*model.Batch, error)
	// UpdateStatus writes a new status for the batch. When the status is
	// IMPORTED the imported date is stamped as well.
	UpdateStatus(ctx context.Context, batchID int64, status model.BatchStatus, userID int64) error
	// ResetBatch detaches all packs from the batch (clearing batch and system
	// references together) and forces the batch status back to PENDING.
	ResetBatch(ctx context.Context, batchID, userID int64) error
	// ApplyPackAssignment creates or updates the batch and attaches the packs
	// with their order numbers. Returns the resulting status and batch id
	// (newly assigned when a.BatchID is zero).
	ApplyPackAssignment(ctx context.Context, a PackAssignment) (model.BatchStatus, int64, error)
	// GetBatchIDsBySystem lists the batch ids owned by a system.
	GetBatchIDsBySystem(ctx context.Context, systemID int64) ([]int64, error)
	// ActiveSystems returns the subset of systemIDs that have at least one
	// batch in a non-terminal status (anything other than IMPORTED or
	// PROCESSING_COMPLETE).
	ActiveSystems(ctx context.Context, systemIDs []int64) ([]int64, error)
	// WithTransaction runs fn inside a single atomic unit. Either every write
	// issued through the transaction context commits, or none do.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PackRepositoryInterface defines the persistence contract for packs.
type PackRepositoryInterface interface {
	// VerifyPackListByCompany reports whether every pack in packList belongs
	// to the given company.
	VerifyPackListByCompany(ctx context.Context, companyID int64, packList []int64) (bool, error)
	// MaxOrderNo returns the highest order number currently assigned within
	// the system, or zero when the system has no ordered packs.
	MaxOrderNo(ctx context.Context, systemID int64) (int, error)
	// GetOrderedPackList canonicalizes a possibly unordered pack id list into
	// persisted queue order.
	GetOrderedPackList(ctx context.Context, packList []int64) ([]int64, error)
	// CountAssigned returns how many of the given packs already carry a batch
	// id.
	CountAssigned(ctx context.Context, packList []int64) (int64, error)
	// GetPacksByBatchIDs returns pack summaries grouped by batch id, each
	// group sorted by queue order.
	GetPacksByBatchIDs(ctx context.Context, batchIDs []int64) (map[int64][]model.PackSummary, error)
}

// SystemSettingsRepositoryInterface defines the persistence contract for
// per-system throughput configuration.
type SystemSettingsRepositoryInterface interface {
	// ThroughputConfig fetches a system's capacity configuration, failing with
	// ErrSettingsNotFound if the system is unknown.
	ThroughputConfig(ctx context.Context, systemID int64) (*model.ThroughputConfig, error)
}
