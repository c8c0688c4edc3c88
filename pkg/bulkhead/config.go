package bulkhead

import (
	"time"

	"github.com/vnykmshr/gobulkhead/pkg/common/validation"
)

// Default configuration values, matching common bulkhead deployments: a
// modest concurrency ceiling with immediate rejection when saturated.
const (
	DefaultMaxConcurrentCalls = 25
	DefaultMaxWaitTime        = 0 * time.Millisecond
)

// Config holds the admission policy of a Bulkhead. Config values are
// immutable once applied; ChangeConfig replaces the active configuration
// wholesale rather than mutating it.
type Config struct {
	// MaxConcurrentCalls is the number of calls allowed in flight at once.
	// Must be positive.
	MaxConcurrentCalls int

	// MaxWaitTime is how long an admission request may block waiting for a
	// free permit. Zero means reject immediately when saturated. Must not
	// be negative.
	MaxWaitTime time.Duration
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		MaxConcurrentCalls: DefaultMaxConcurrentCalls,
		MaxWaitTime:        DefaultMaxWaitTime,
	}
}

// Validate checks the configuration, returning a ValidationError describing
// the first invalid field.
func (c Config) Validate() error {
	if err := validation.ValidatePositive("bulkhead", "maxConcurrentCalls", c.MaxConcurrentCalls); err != nil {
		return err
	}
	return validation.ValidateNonNegativeDuration("bulkhead", "maxWaitTime", c.MaxWaitTime)
}
