// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/batch-service/config"
	"github.com/guttosm/batch-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
// The returned cleanup func drains buffered inventory reconciliation tasks
// and closes the database connection; call it after the server stops.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories)
	dbComponents := InitializeDatabase(cfg.Database, cfg.Throughput)

	// Initialize business services on top of the repositories
	serviceComponents := InitializeServices(dbComponents, cfg.Dispatcher)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	router := http.NewRouter(routerComponents.BatchService, routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func() {
		if serviceComponents != nil && serviceComponents.Dispatcher != nil {
			serviceComponents.Dispatcher.Stop()
		}
		if dbComponents != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := dbComponents.DB.Close(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to close MongoDB connection")
			}
		}
	}

	return router, cleanup
}
