// Package app provides router configuration.
package app

import (
	"github.com/guttosm/batch-service/config"
	"github.com/guttosm/batch-service/internal/http"
	"github.com/guttosm/batch-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	BatchService  service.BatchService
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil && dbComponents.SettingsCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_system_settings", dbComponents.SettingsCircuitBreaker)
	}

	var batchService service.BatchService
	if serviceComponents != nil {
		batchService = serviceComponents.BatchService
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
	}

	return &RouterComponents{
		BatchService:  batchService,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
