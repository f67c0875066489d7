package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/batch-service/internal/domain/model"
)

func TestBatchStatus_Valid(t *testing.T) {
	tests := []struct {
		name   string
		status model.BatchStatus
		valid  bool
	}{
		{name: "pending", status: model.StatusPending, valid: true},
		{name: "canister transfer recommended", status: model.StatusCanisterTransferRecommended, valid: true},
		{name: "canister transfer done", status: model.StatusCanisterTransferDone, valid: true},
		{name: "imported", status: model.StatusImported, valid: true},
		{name: "processing complete", status: model.StatusProcessingComplete, valid: true},
		{name: "empty", status: model.BatchStatus(""), valid: false},
		{name: "unknown", status: model.BatchStatus("SHIPPED"), valid: false},
		{name: "lowercase", status: model.BatchStatus("pending"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
		})
	}
}

func TestBatchStatus_PreImport(t *testing.T) {
	assert.True(t, model.StatusPending.PreImport())
	assert.True(t, model.StatusCanisterTransferRecommended.PreImport())
	assert.True(t, model.StatusCanisterTransferDone.PreImport())
	assert.False(t, model.StatusImported.PreImport())
	assert.False(t, model.StatusProcessingComplete.PreImport())
}

func TestBatchStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    model.BatchStatus
		to      model.BatchStatus
		allowed bool
	}{
		{name: "pending to imported", from: model.StatusPending, to: model.StatusImported, allowed: true},
		{name: "pending to canister transfer recommended", from: model.StatusPending, to: model.StatusCanisterTransferRecommended, allowed: true},
		{name: "imported to processing complete", from: model.StatusImported, to: model.StatusProcessingComplete, allowed: true},
		{name: "imported to pending blocked", from: model.StatusImported, to: model.StatusPending, allowed: false},
		{name: "imported to canister transfer recommended blocked", from: model.StatusImported, to: model.StatusCanisterTransferRecommended, allowed: false},
		{name: "imported to canister transfer done blocked", from: model.StatusImported, to: model.StatusCanisterTransferDone, allowed: false},
		{name: "imported to imported", from: model.StatusImported, to: model.StatusImported, allowed: true},
		{name: "processing complete to pending", from: model.StatusProcessingComplete, to: model.StatusPending, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestThroughputConfig_Validate(t *testing.T) {
	valid := model.ThroughputConfig{
		SystemID:      3,
		PacksPerHour:  50,
		HoursPerDay:   10,
		SaturdayHours: 5,
		SundayHours:   0,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name     string
		mutate   func(*model.ThroughputConfig)
		expected error
	}{
		{
			name:     "zero packs per hour",
			mutate:   func(c *model.ThroughputConfig) { c.PacksPerHour = 0 },
			expected: model.ErrNonPositivePacksPerHour,
		},
		{
			name:     "negative packs per hour",
			mutate:   func(c *model.ThroughputConfig) { c.PacksPerHour = -1 },
			expected: model.ErrNonPositivePacksPerHour,
		},
		{
			name:     "zero weekday hours",
			mutate:   func(c *model.ThroughputConfig) { c.HoursPerDay = 0 },
			expected: model.ErrNonPositiveDayHours,
		},
		{
			name:     "negative saturday hours",
			mutate:   func(c *model.ThroughputConfig) { c.SaturdayHours = -2 },
			expected: model.ErrNegativeWeekendHours,
		},
		{
			name:     "negative sunday hours",
			mutate:   func(c *model.ThroughputConfig) { c.SundayHours = -0.5 },
			expected: model.ErrNegativeWeekendHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.expected)
		})
	}
}
