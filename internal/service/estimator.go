package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/batch-service/internal/domain/model"
	"github.com/guttosm/batch-service/internal/metrics"
	"github.com/guttosm/batch-service/internal/repository"
)

// BatchPackCount is one estimation input: how many packs a batch still has
// and when processing starts.
type BatchPackCount struct {
	BatchID   int64
	PackCount int
	StartDate time.Time
}

// Estimator projects batch processing hours from per-system throughput
// configuration.
type Estimator interface {
	Estimate(ctx context.Context, systemID int64, batches []BatchPackCount) (map[int64]float64, error)
}

// EstimatorService implements Estimator against the system settings
// repository.
type EstimatorService struct {
	settings repository.SystemSettingsRepositoryInterface
}

// NewEstimatorService creates a new processing-time estimator.
func NewEstimatorService(settings repository.SystemSettingsRepositoryInterface) *EstimatorService {
	return &EstimatorService{settings: settings}
}

// Estimate returns projected processing hours per batch, rounded to two
// decimal places. Batches are independent of each other; each one consumes
// capacity day by day from its own start date.
func (s *EstimatorService) Estimate(ctx context.Context, systemID int64, batches []BatchPackCount) (map[int64]float64, error) {
	start := time.Now()
	defer func() {
		metrics.RecordEstimation(time.Since(start))
	}()

	cfg, err := s.settings.ThroughputConfig(ctx, systemID)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	estimates := make(map[int64]float64, len(batches))
	for _, b := range batches {
		estimates[b.BatchID] = estimateHours(*cfg, b.PackCount, b.StartDate)
	}
	return estimates, nil
}

// estimateHours consumes capacity one calendar day at a time. Saturdays and
// Sundays use their dedicated hour allotments; the final partial day
// contributes fractional hours. Terminates because the weekday allotment is
// validated positive and the date advances whenever a full day is consumed.
func estimateHours(cfg model.ThroughputConfig, packCount int, start time.Time) float64 {
	remaining := float64(packCount)
	date := start
	hours := 0.0

	for remaining > 0 {
		dayHours := cfg.HoursPerDay
		switch date.Weekday() {
		case time.Saturday:
			dayHours = cfg.SaturdayHours
		case time.Sunday:
			dayHours = cfg.SundayHours
		}

		dayCapacity := cfg.PacksPerHour * dayHours
		if remaining >= dayCapacity {
			remaining -= dayCapacity
			hours += dayHours
			date = date.AddDate(0, 0, 1)
		} else {
			hours += remaining / cfg.PacksPerHour
			remaining = 0
		}
	}

	rounded, _ := decimal.NewFromFloat(hours).Round(2).Float64()
	return rounded
}
