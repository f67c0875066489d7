package model

import "errors"

// Throughput configuration validation errors.
var (
	ErrNonPositivePacksPerHour = errors.New("packs per hour must be positive")
	ErrNonPositiveDayHours     = errors.New("hours per day must be positive")
	ErrNegativeWeekendHours    = errors.New("weekend hours must not be negative")
)

// ThroughputConfig is a production system's capacity configuration used to
// project batch completion. Weekend allotments may be zero (the system does
// not run that day); the estimator's per-day loop still terminates because
// the date keeps advancing.
type ThroughputConfig struct {
	SystemID     int64   `bson:"system_id" json:"system_id"`
	PacksPerHour float64 `bson:"packs_per_hour" json:"packs_per_hour"`
	// HoursPerDay is the normal weekday allotment.
	HoursPerDay   float64 `bson:"hours_per_day" json:"hours_per_day"`
	SaturdayHours float64 `bson:"saturday_hours" json:"saturday_hours"`
	SundayHours   float64 `bson:"sunday_hours" json:"sunday_hours"`
}

// Validate checks the estimator's preconditions. A non-positive packs-per-hour
// or weekday allotment would make the estimation loop non-terminating, so the
// configuration is rejected up front instead of clamped at estimation time.
func (c ThroughputConfig) Validate() error {
	if c.PacksPerHour <= 0 {
		return ErrNonPositivePacksPerHour
	}
	if c.HoursPerDay <= 0 {
		return ErrNonPositiveDayHours
	}
	if c.SaturdayHours < 0 || c.SundayHours < 0 {
		return ErrNegativeWeekendHours
	}
	return nil
}
