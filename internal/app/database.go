// Package app provides database initialization and setup.
package app

import (
	"github.com/guttosm/batch-service/config"
	"github.com/guttosm/batch-service/internal/circuitbreaker"
	"github.com/guttosm/batch-service/internal/domain/model"
	"github.com/guttosm/batch-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	BatchRepo              repository.BatchRepositoryInterface
	PackRepo               repository.PackRepositoryInterface
	SettingsRepo           repository.SystemSettingsRepositoryInterface
	SettingsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, throughput config.ThroughputConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	settingsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-system-settings",
	})

	// Fallback capacity used while the settings collection is unreachable,
	// so estimation keeps answering with configured defaults.
	fallback := &model.ThroughputConfig{
		PacksPerHour:  throughput.PacksPerHour,
		HoursPerDay:   throughput.HoursPerDay,
		SaturdayHours: throughput.SaturdayHours,
		SundayHours:   throughput.SundayHours,
	}

	settingsRepo := repository.NewSystemSettingsRepository(db)
	settingsRepoWithCB := repository.NewSystemSettingsRepositoryWithCircuitBreaker(settingsRepo, settingsCB, fallback)

	return &DatabaseComponents{
		DB:                     db,
		BatchRepo:              repository.NewBatchRepository(db),
		PackRepo:               repository.NewPackRepository(db),
		SettingsRepo:           settingsRepoWithCB,
		SettingsCircuitBreaker: settingsCB,
	}
}
