// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/batch-service/internal/circuitbreaker"
	"github.com/guttosm/batch-service/internal/domain/model"
)

// SystemSettingsRepositoryWithCircuitBreaker wraps SystemSettingsRepository
// with circuit breaker protection. Throughput configuration is read on every
// batch query, so a struggling settings collection must not drag the whole
// query path down with it.
type SystemSettingsRepositoryWithCircuitBreaker struct {
	repo           *SystemSettingsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
	// fallback is used while the circuit is open, so estimates keep flowing
	// with stale-but-sane capacity numbers.
	fallback *model.ThroughputConfig
}

// NewSystemSettingsRepositoryWithCircuitBreaker creates a new repository
// wrapper with circuit breaker protection. fallback may be nil, in which case
// an open circuit surfaces the breaker error instead.
func NewSystemSettingsRepositoryWithCircuitBreaker(repo *SystemSettingsRepository, cb *circuitbreaker.CircuitBreaker, fallback *model.ThroughputConfig) *SystemSettingsRepositoryWithCircuitBreaker {
	return &SystemSettingsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
		fallback:       fallback,
	}
}

// ThroughputConfig fetches a system's capacity configuration with circuit
// breaker protection.
func (r *SystemSettingsRepositoryWithCircuitBreaker) ThroughputConfig(ctx context.Context, systemID int64) (*model.ThroughputConfig, error) {
	var result *model.ThroughputConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ThroughputConfig(ctx, systemID)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen && r.fallback != nil {
		cfg := *r.fallback
		cfg.SystemID = systemID
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SystemSettingsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
