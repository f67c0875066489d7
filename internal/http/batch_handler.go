// Package http provides the HTTP transport layer for the batch service.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/batch-service/internal/domain/dto"
	"github.com/guttosm/batch-service/internal/i18n"
	"github.com/guttosm/batch-service/internal/service"
)

// BatchHandler provides HTTP handlers for batch assignment and estimation
// routes.
type BatchHandler struct {
	batchService service.BatchService
}

// NewBatchHandler creates a new BatchHandler instance.
func NewBatchHandler(batchService service.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// CreateBatch handles POST /api/batches requests. It attaches the requested
// packs to a new or existing batch and returns the resulting batch id and
// status.
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.batchService.CreateBatch(c.Request.Context(), &req)
	if err != nil {
		h.writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(result)
}

// CreateMultiBatch handles POST /api/batches/multi requests. The request
// carries a scheduled start time and a precomputed processing-time estimate
// alongside the pack list.
func (h *BatchHandler) CreateMultiBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateMultiBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.batchService.CreateMultiBatch(c.Request.Context(), &req)
	if err != nil {
		h.writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(result)
}

// CreateBatchesForSystems handles POST /api/systems/batches requests. It
// creates one batch per entry, refusing the whole call when any target
// system still has packs assigned.
func (h *BatchHandler) CreateBatchesForSystems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var reqs []dto.CreateMultiBatchRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if len(reqs) == 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, errors.New("empty request list"))
		return
	}

	results, err := h.batchService.CreateBatchesForSystems(c.Request.Context(), reqs)
	if err != nil {
		h.writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(results)
}

// GetSystemPacks handles GET /api/systems/:system_id/packs requests. It
// returns the packs of every batch on the system, grouped by batch and
// annotated with estimated processing hours.
func (h *BatchHandler) GetSystemPacks(c *gin.Context) {
	builder := NewResponseBuilder(c)

	systemID, err := strconv.ParseInt(c.Param("system_id"), 10, 64)
	if err != nil || systemID <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	groups, err := h.batchService.GetPacksByBatchIDs(c.Request.Context(), systemID)
	if err != nil {
		h.writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(groups)
}

// GetSystemStatus handles POST /api/systems/status requests. It reports,
// per system, whether the system is idle and ready for a new batch.
func (h *BatchHandler) GetSystemStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SystemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	status, err := h.batchService.GetSystemStatus(c.Request.Context(), req.SystemIDs)
	if err != nil {
		h.writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(status)
}

// writeServiceError maps service error codes onto HTTP statuses. Messages
// coming from the service are already user facing.
func (h *BatchHandler) writeServiceError(builder *ResponseBuilder, err error) {
	var be *service.BatchError
	if errors.As(err, &be) {
		builder.ErrorWithMessage(statusForCode(be.Code), be.Message, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// statusForCode translates a batch error code into an HTTP status code.
func statusForCode(code service.BatchErrorCode) int {
	switch code {
	case service.ErrCodeValidation:
		return http.StatusBadRequest
	case service.ErrCodeAlreadyImported:
		return http.StatusConflict
	case service.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
