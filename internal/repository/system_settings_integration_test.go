//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/batch-service/internal/circuitbreaker"
	"github.com/guttosm/batch-service/internal/domain/model"
)

func TestSystemSettingsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewSystemSettingsRepository(db)

	t.Run("unknown system", func(t *testing.T) {
		_, err := repo.ThroughputConfig(ctx, 404)
		assert.ErrorIs(t, err, ErrSettingsNotFound)
	})

	t.Run("upsert then fetch", func(t *testing.T) {
		cfg := model.ThroughputConfig{
			SystemID:      3,
			PacksPerHour:  60,
			HoursPerDay:   12,
			SaturdayHours: 6,
			SundayHours:   0,
		}
		require.NoError(t, repo.Upsert(ctx, cfg))

		fetched, err := repo.ThroughputConfig(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, cfg, *fetched)
	})

	t.Run("upsert overwrites existing", func(t *testing.T) {
		cfg := model.ThroughputConfig{
			SystemID:     3,
			PacksPerHour: 45,
			HoursPerDay:  8,
		}
		require.NoError(t, repo.Upsert(ctx, cfg))

		fetched, err := repo.ThroughputConfig(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 45.0, fetched.PacksPerHour)
		assert.Equal(t, 8.0, fetched.HoursPerDay)
	})
}

func TestSystemSettingsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewSystemSettingsRepository(db)
	require.NoError(t, repo.Upsert(ctx, model.ThroughputConfig{
		SystemID:     6,
		PacksPerHour: 50,
		HoursPerDay:  10,
	}))

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	fallback := model.ThroughputConfig{PacksPerHour: 50, HoursPerDay: 10}
	wrapped := NewSystemSettingsRepositoryWithCircuitBreaker(repo, cb, &fallback)

	t.Run("passes through while closed", func(t *testing.T) {
		cfg, err := wrapped.ThroughputConfig(ctx, 6)
		require.NoError(t, err)
		assert.Equal(t, int64(6), cfg.SystemID)
		assert.Equal(t, 50.0, cfg.PacksPerHour)
	})

	t.Run("not found is not shadowed by fallback", func(t *testing.T) {
		_, err := wrapped.ThroughputConfig(ctx, 404)
		assert.ErrorIs(t, err, ErrSettingsNotFound)
	})

	t.Run("breaker stays healthy", func(t *testing.T) {
		stats := cb.GetStats()
		assert.True(t, stats.IsHealthy)
	})
}
