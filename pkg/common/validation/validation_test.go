package validation

import (
	"errors"
	"testing"
	"time"

	gberrors "github.com/vnykmshr/gobulkhead/pkg/common/errors"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"positive", 10, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("bulkhead", "maxConcurrentCalls", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, gberrors.ErrInvalidConfiguration) {
				t.Error("validation errors should unwrap to ErrInvalidConfiguration")
			}
		})
	}
}

func TestValidateNonNegativeDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   time.Duration
		wantErr bool
	}{
		{"positive", 50 * time.Millisecond, false},
		{"zero", 0, false},
		{"negative", -time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegativeDuration("bulkhead", "maxWaitTime", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegativeDuration(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("bulkhead", "name", "payments"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNotEmpty("bulkhead", "name", ""); err == nil {
		t.Error("expected error for empty string")
	}
}

func TestValidateNotNil(t *testing.T) {
	if err := ValidateNotNil("bulkhead", "supplier", func() {}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNotNil("bulkhead", "supplier", nil); err == nil {
		t.Error("expected error for nil value")
	}
}
