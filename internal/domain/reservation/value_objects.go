package reservation

import (
	"time"

	"car-rental-api/internal/pkg/errs"
)

var (
	ErrInvalidInterval = errs.New("invalid interval: pickup must be before return")
	ErrNegativePrice   = errs.New("price cannot be negative")
)

// DateRange is a rental interval [pickup, return). Boundaries are treated as
// inclusive for overlap purposes: two ranges sharing a boundary day conflict.
type DateRange struct {
	pickup time.Time
	ret    time.Time
}

func NewDateRange(pickup, ret time.Time) (DateRange, error) {
	if pickup.IsZero() || ret.IsZero() {
		return DateRange{}, ErrInvalidInterval
	}
	if !pickup.Before(ret) {
		return DateRange{}, ErrInvalidInterval
	}
	return DateRange{pickup: pickup, ret: ret}, nil
}

func (d DateRange) Pickup() time.Time { return d.pickup }
func (d DateRange) Return() time.Time { return d.ret }

// Days counts billable whole days, exclusive of the return day:
// ceil((return - pickup) / 24h), minimum 1. A 10th -> 12th rental is 2 days.
func (d DateRange) Days() int64 {
	const day = 24 * time.Hour
	diff := d.ret.Sub(d.pickup)
	days := int64(diff / day)
	if diff%day != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// Overlaps reports whether the two ranges share at least one covered day
// under the inclusive-boundary rule.
func (d DateRange) Overlaps(other DateRange) bool {
	return !d.pickup.After(other.ret) && !d.ret.Before(other.pickup)
}

// EndedBy reports whether the rental has finished by the given instant.
func (d DateRange) EndedBy(now time.Time) bool {
	return !d.ret.After(now)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) MultiplyDays(days int64) Money {
	return Money{cents: m.cents * days}
}
