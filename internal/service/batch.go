package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/batch-service/internal/domain/dto"
	"github.com/guttosm/batch-service/internal/domain/model"
	"github.com/guttosm/batch-service/internal/logger"
	"github.com/guttosm/batch-service/internal/metrics"
	"github.com/guttosm/batch-service/internal/repository"
)

// BatchService is the batch pack assignment engine. It is the only component
// allowed to mutate batch status and pack-batch associations together.
type BatchService interface {
	CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*dto.BatchResult, error)
	CreateMultiBatch(ctx context.Context, req *dto.CreateMultiBatchRequest) (*dto.BatchResult, error)
	CreateBatchesForSystems(ctx context.Context, reqs []dto.CreateMultiBatchRequest) ([]dto.BatchResult, error)
	GetPacksByBatchIDs(ctx context.Context, systemID int64) (map[int64]*model.BatchPackGroup, error)
	GetSystemStatus(ctx context.Context, systemIDs []int64) (map[int64]bool, error)
}

// BatchServiceImpl implements BatchService.
type BatchServiceImpl struct {
	batches    repository.BatchRepositoryInterface
	packs      repository.PackRepositoryInterface
	allocator  OrderAllocator
	estimator  Estimator
	dispatcher InventoryDispatcher
	timeZone   string
}

// BatchServiceOption configures a BatchServiceImpl.
type BatchServiceOption func(*BatchServiceImpl)

// WithInventoryDispatcher enables post-commit inventory reconciliation
// dispatch.
func WithInventoryDispatcher(d InventoryDispatcher) BatchServiceOption {
	return func(s *BatchServiceImpl) {
		s.dispatcher = d
	}
}

// WithTimeZone sets the time zone forwarded to inventory reconciliation.
func WithTimeZone(tz string) BatchServiceOption {
	return func(s *BatchServiceImpl) {
		s.timeZone = tz
	}
}

// NewBatchService creates a new batch assignment engine.
func NewBatchService(
	batches repository.BatchRepositoryInterface,
	packs repository.PackRepositoryInterface,
	allocator OrderAllocator,
	estimator Estimator,
	opts ...BatchServiceOption,
) *BatchServiceImpl {
	s := &BatchServiceImpl{
		batches:   batches,
		packs:     packs,
		allocator: allocator,
		estimator: estimator,
		timeZone:  "UTC",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBatch assigns packs to a batch in a single atomic unit: reset (when
// requested), pack attachment with freshly allocated order numbers, and the
// status write either all commit or none do.
func (s *BatchServiceImpl) CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*dto.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, WrapBatchError(ErrCodeValidation, err.Error(), err)
	}

	batch, err := s.loadAndGuard(ctx, req.BatchID, req.Status, req.Reset, req.CRM)
	if err != nil {
		return nil, err
	}

	if req.StatusUpdateOnly() {
		if err := s.batches.UpdateStatus(ctx, req.BatchID, req.Status, req.UserID); err != nil {
			return nil, s.translate(err, "update batch status")
		}
		metrics.RecordBatchAssignment("single", "status_update")
		return &dto.BatchResult{BatchID: req.BatchID, BatchStatus: req.Status.String()}, nil
	}

	if err := s.verifyCompany(ctx, req.CompanyID, req.PackList); err != nil {
		return nil, err
	}

	result := &dto.BatchResult{BatchID: req.BatchID}
	txErr := s.batches.WithTransaction(ctx, func(txCtx context.Context) error {
		status := req.Status
		if req.Reset {
			if err := s.batches.ResetBatch(txCtx, req.BatchID, req.UserID); err != nil {
				return err
			}
			status = model.StatusPending
		}
		result.BatchStatus = status.String()

		if len(req.PackList) == 0 {
			return nil
		}

		orders, err := s.allocator.NextOrderNumbers(txCtx, req.SystemID, req.PackList)
		if err != nil {
			return err
		}
		if status == "" {
			status = defaultStatus(req.BatchID, batch)
		}

		applied, batchID, err := s.batches.ApplyPackAssignment(txCtx, repository.PackAssignment{
			BatchID:      req.BatchID,
			SystemID:     req.SystemID,
			UserID:       req.UserID,
			BatchName:    req.BatchName,
			Status:       status,
			PackList:     req.PackList,
			OrderNumbers: orders,
		})
		if err != nil {
			return err
		}
		result.BatchID = batchID
		result.BatchStatus = applied.String()
		return nil
	})
	if txErr != nil {
		metrics.RecordBatchAssignment("single", "error")
		return nil, s.translate(txErr, "create batch")
	}

	metrics.RecordBatchAssignment("single", "ok")
	s.dispatchInventory(req.CompanyID, result.BatchID, req.SystemID, len(req.PackList))
	return result, nil
}

// CreateMultiBatch assigns packs with scheduling metadata. The pack ordering
// is re-derived from persistence instead of trusting the caller-supplied
// order, which defends against stale or reordered client lists under
// concurrent edits.
//
// The reference behavior ran this path outside a transaction while the
// single-batch path was transactional; that inconsistency looked like an
// oversight, so this path is scoped atomically as well.
func (s *BatchServiceImpl) CreateMultiBatch(ctx context.Context, req *dto.CreateMultiBatchRequest) (*dto.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, WrapBatchError(ErrCodeValidation, err.Error(), err)
	}

	batch, err := s.loadAndGuard(ctx, req.BatchID, req.Status, req.Reset, req.CRM)
	if err != nil {
		return nil, err
	}

	if req.StatusUpdateOnly() {
		if err := s.batches.UpdateStatus(ctx, req.BatchID, req.Status, req.UserID); err != nil {
			return nil, s.translate(err, "update batch status")
		}
		metrics.RecordBatchAssignment("multi", "status_update")
		return &dto.BatchResult{BatchID: req.BatchID, BatchStatus: req.Status.String()}, nil
	}

	if err := s.verifyCompany(ctx, req.CompanyID, req.PackList); err != nil {
		return nil, err
	}

	result := &dto.BatchResult{BatchID: req.BatchID}
	txErr := s.batches.WithTransaction(ctx, func(txCtx context.Context) error {
		packList, err := s.packs.GetOrderedPackList(txCtx, req.PackList)
		if err != nil {
			return err
		}

		status := req.Status
		if req.Reset {
			if err := s.batches.ResetBatch(txCtx, req.BatchID, req.UserID); err != nil {
				return err
			}
			status = model.StatusPending
		}
		result.BatchStatus = status.String()

		if len(packList) == 0 {
			return nil
		}

		orders, err := s.allocator.NextOrderNumbers(txCtx, req.SystemID, packList)
		if err != nil {
			return err
		}
		if status == "" {
			status = defaultStatus(req.BatchID, batch)
		}

		estimated := req.EstimatedProcessingTime
		applied, batchID, err := s.batches.ApplyPackAssignment(txCtx, repository.PackAssignment{
			BatchID:                 req.BatchID,
			SystemID:                req.SystemID,
			UserID:                  req.UserID,
			BatchName:               req.BatchName,
			Status:                  status,
			PackList:                packList,
			OrderNumbers:            orders,
			ScheduledStartTime:      req.ScheduledStartTime,
			EstimatedProcessingTime: &estimated,
		})
		if err != nil {
			return err
		}
		result.BatchID = batchID
		result.BatchStatus = applied.String()
		return nil
	})
	if txErr != nil {
		metrics.RecordBatchAssignment("multi", "error")
		return nil, s.translate(txErr, "create multi batch")
	}

	metrics.RecordBatchAssignment("multi", "ok")
	s.dispatchInventory(req.CompanyID, result.BatchID, req.SystemID, len(req.PackList))
	return result, nil
}

// CreateBatchesForSystems runs multi-batch assignment for several systems in
// one request, rejecting the whole request up front when any submitted pack
// already belongs to a batch.
func (s *BatchServiceImpl) CreateBatchesForSystems(ctx context.Context, reqs []dto.CreateMultiBatchRequest) ([]dto.BatchResult, error) {
	var allPacks []int64
	for i := range reqs {
		allPacks = append(allPacks, reqs[i].PackList...)
	}
	if len(allPacks) > 0 {
		assigned, err := s.packs.CountAssigned(ctx, allPacks)
		if err != nil {
			return nil, s.translate(err, "check pack assignment")
		}
		if assigned != 0 {
			return nil, NewBatchError(ErrCodeValidation, "one or more packs already belong to a batch")
		}
	}

	results := make([]dto.BatchResult, 0, len(reqs))
	for i := range reqs {
		result, err := s.CreateMultiBatch(ctx, &reqs[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// GetPacksByBatchIDs returns a system's packs grouped by batch, each group
// carrying a freshly recomputed processing-time estimate so summaries reflect
// packs deleted or moved to manual since the last write.
func (s *BatchServiceImpl) GetPacksByBatchIDs(ctx context.Context, systemID int64) (map[int64]*model.BatchPackGroup, error) {
	batchIDs, err := s.batches.GetBatchIDsBySystem(ctx, systemID)
	if err != nil {
		return nil, s.translate(err, "list system batches")
	}
	if len(batchIDs) == 0 {
		return map[int64]*model.BatchPackGroup{}, nil
	}

	grouped, err := s.packs.GetPacksByBatchIDs(ctx, batchIDs)
	if err != nil {
		return nil, s.translate(err, "load packs by batch")
	}

	counts := make([]BatchPackCount, 0, len(grouped))
	for batchID, packs := range grouped {
		if len(packs) == 0 {
			continue
		}
		start := time.Now()
		if packs[0].ScheduledStartTime != nil {
			start = *packs[0].ScheduledStartTime
		}
		counts = append(counts, BatchPackCount{
			BatchID:   batchID,
			PackCount: len(packs),
			StartDate: start,
		})
	}

	estimates, err := s.estimator.Estimate(ctx, systemID, counts)
	if err != nil {
		return nil, s.translate(err, "estimate processing time")
	}

	groups := make(map[int64]*model.BatchPackGroup, len(grouped))
	for batchID, packs := range grouped {
		groups[batchID] = &model.BatchPackGroup{
			BatchID:        batchID,
			EstimatedHours: estimates[batchID],
			Packs:          packs,
		}
	}
	return groups, nil
}

// GetSystemStatus reports, per system, whether the system is idle: true when
// no batch is in flight for it.
func (s *BatchServiceImpl) GetSystemStatus(ctx context.Context, systemIDs []int64) (map[int64]bool, error) {
	idle := make(map[int64]bool, len(systemIDs))
	if len(systemIDs) == 0 {
		return idle, nil
	}
	for _, id := range systemIDs {
		idle[id] = true
	}

	active, err := s.batches.ActiveSystems(ctx, systemIDs)
	if err != nil {
		return nil, s.translate(err, "load system status")
	}
	for _, id := range active {
		idle[id] = false
	}
	return idle, nil
}

// loadAndGuard fetches the batch record for an existing batch id and enforces
// the import-revert guard. CRM callers bypass the guard but still get the
// record loaded for status defaulting. Reset requests bypass the guard too:
// reset is the one sanctioned way back from IMPORTED.
func (s *BatchServiceImpl) loadAndGuard(ctx context.Context, batchID int64, target model.BatchStatus, reset, crm bool) (*model.Batch, error) {
	if batchID == 0 {
		return nil, nil
	}

	batch, err := s.batches.GetBatch(ctx, batchID)
	if err != nil {
		return nil, s.translate(err, "load batch record")
	}

	if !crm && !reset && target != "" && !batch.Status.CanTransitionTo(target) {
		return nil, NewBatchError(ErrCodeAlreadyImported, "Already Imported.")
	}
	return batch, nil
}

// verifyCompany rejects the request before any mutation when the pack list
// crosses a company boundary.
func (s *BatchServiceImpl) verifyCompany(ctx context.Context, companyID int64, packList []int64) error {
	if len(packList) == 0 {
		return nil
	}

	valid, err := s.packs.VerifyPackListByCompany(ctx, companyID, packList)
	if err != nil {
		return s.translate(err, "verify pack ownership")
	}
	if !valid {
		return NewBatchError(ErrCodeValidation, "pack list does not belong to the company")
	}
	return nil
}

// defaultStatus picks the status written when the caller supplied none: new
// batches start PENDING, existing batches keep their persisted status.
func defaultStatus(batchID int64, batch *model.Batch) model.BatchStatus {
	if batchID == 0 || batch == nil {
		return model.StatusPending
	}
	return batch.Status
}

// translate maps collaborator errors onto the service taxonomy, logging the
// triggering context. Persistence errors come back as the retryable internal
// code; atomic scoping guarantees no partial mutation survived.
func (s *BatchServiceImpl) translate(err error, op string) error {
	var be *BatchError
	if errors.As(err, &be) {
		return be
	}
	if errors.Is(err, repository.ErrBatchNotFound) {
		return WrapBatchError(ErrCodeNotFound, "the parameter batch_id does not exist", err)
	}

	log := logger.Logger()
	log.Error().Err(err).Str("op", op).Msg("Batch operation failed")
	return WrapBatchError(ErrCodeInternal, "batch operation failed", err)
}

// dispatchInventory submits a best-effort drug inventory reconciliation after
// a successful assignment. Runs outside the transaction, never before commit.
func (s *BatchServiceImpl) dispatchInventory(companyID, batchID, systemID int64, packCount int) {
	if s.dispatcher == nil || packCount == 0 {
		return
	}
	s.dispatcher.Dispatch(InventoryTask{
		CompanyID: companyID,
		TimeZone:  s.timeZone,
		BatchID:   batchID,
		SystemIDs: []int64{systemID},
	})
}
