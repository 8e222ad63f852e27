// Package timepolicy answers expiry questions about booking timestamps.
package timepolicy

import (
	"fmt"
	"time"

	"go-booking-cache/internal/models"
)

// ExpiredLabel is returned by FormatTimeRemaining once the expiry has passed
const ExpiredLabel = "Expired"

// Clock returns the current wall-clock time
type Clock func() time.Time

// Policy evaluates expiry timestamps against a clock
type Policy struct {
	now Clock
}

// New creates a Policy. A nil clock falls back to time.Now.
func New(clock Clock) *Policy {
	if clock == nil {
		clock = time.Now
	}
	return &Policy{now: clock}
}

// Now returns the current time in epoch seconds, floored
func (p *Policy) Now() models.Timestamp {
	return models.TimestampFromTime(p.now())
}

// IsExpired reports whether now is strictly after expiry.
// now == expiry is not expired.
func (p *Policy) IsExpired(expiry models.Timestamp) bool {
	return p.Now() > expiry
}

// Remaining returns the number of seconds left until expiry; zero or
// negative once expired.
func (p *Policy) Remaining(expiry models.Timestamp) int64 {
	return expiry.Unix() - p.Now().Unix()
}

// FormatTimeRemaining renders the time left using the two coarsest units
func (p *Policy) FormatTimeRemaining(expiry models.Timestamp) string {
	remaining := p.Remaining(expiry)
	if remaining <= 0 {
		return ExpiredLabel
	}

	hours := remaining / 3600
	minutes := (remaining % 3600) / 60
	seconds := remaining % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm remaining", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds remaining", minutes, seconds)
	default:
		return fmt.Sprintf("%ds remaining", seconds)
	}
}

var defaultPolicy = New(nil)

// IsExpired reports whether expiry is in the past according to time.Now
func IsExpired(expiry models.Timestamp) bool {
	return defaultPolicy.IsExpired(expiry)
}

// IsExpiredString parses a decimal epoch seconds string and reports whether
// it is in the past
func IsExpiredString(expiry string) (bool, error) {
	ts, err := models.ParseTimestamp(expiry)
	if err != nil {
		return false, err
	}
	return defaultPolicy.IsExpired(ts), nil
}

// FormatTimeRemaining renders the time left until expiry according to time.Now
func FormatTimeRemaining(expiry models.Timestamp) string {
	return defaultPolicy.FormatTimeRemaining(expiry)
}
