package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/batch-service/internal/service"
)

// BatchRoutes handles batch-related route registration.
type BatchRoutes struct {
	handler *BatchHandler
}

// NewBatchRoutes creates a new BatchRoutes instance.
func NewBatchRoutes(batchService service.BatchService) *BatchRoutes {
	return &BatchRoutes{handler: NewBatchHandler(batchService)}
}

// Register registers batch routes on the given router group.
func (r *BatchRoutes) Register(rg *gin.RouterGroup) {
	rg.POST("/batches", r.handler.CreateBatch)
	rg.POST("/batches/multi", r.handler.CreateMultiBatch)
	rg.POST("/systems/batches", r.handler.CreateBatchesForSystems)
	rg.GET("/systems/:system_id/packs", r.handler.GetSystemPacks)
	rg.POST("/systems/status", r.handler.GetSystemStatus)
}

// GetHandler returns the underlying batch handler.
func (r *BatchRoutes) GetHandler() *BatchHandler {
	return r.handler
}
