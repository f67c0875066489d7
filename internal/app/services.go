// Package app provides service initialization.
package app

import (
	"github.com/guttosm/batch-service/config"
	"github.com/guttosm/batch-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	BatchService service.BatchService
	Dispatcher   *service.WorkerPoolDispatcher
}

// InitializeServices initializes business logic services. Returns nil when
// no database components are available.
func InitializeServices(dbComponents *DatabaseComponents, cfg config.DispatcherConfig) *ServiceComponents {
	if dbComponents == nil {
		return nil
	}

	allocator := service.NewOrderAllocatorService(dbComponents.PackRepo)
	estimator := service.NewEstimatorService(dbComponents.SettingsRepo)

	var opts []service.BatchServiceOption
	var dispatcher *service.WorkerPoolDispatcher
	if cfg.APIBaseURL != "" {
		reconciler := service.NewHTTPReconciler(cfg.APIBaseURL, cfg.TaskTimeout)
		dispatcher = service.NewWorkerPoolDispatcher(reconciler, service.DispatcherConfig{
			BufferSize:  cfg.BufferSize,
			NumWorkers:  cfg.NumWorkers,
			TaskTimeout: cfg.TaskTimeout,
		})
		opts = append(opts, service.WithInventoryDispatcher(dispatcher))
	}
	if cfg.TimeZone != "" {
		opts = append(opts, service.WithTimeZone(cfg.TimeZone))
	}

	batchService := service.NewBatchService(
		dbComponents.BatchRepo,
		dbComponents.PackRepo,
		allocator,
		estimator,
		opts...,
	)

	return &ServiceComponents{
		BatchService: batchService,
		Dispatcher:   dispatcher,
	}
}
