//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, pickup, ret time.Time) reservation.DateRange {
	t.Helper()
	dr, err := reservation.NewDateRange(pickup, ret)
	require.NoError(t, err)
	return dr
}

func TestNewDateRange(t *testing.T) {
	cases := []struct {
		name   string
		pickup time.Time
		ret    time.Time
		errIs  error
	}{
		{
			name:   "valid interval",
			pickup: date(2024, 1, 10),
			ret:    date(2024, 1, 12),
		},
		{
			name:   "pickup equals return",
			pickup: date(2024, 1, 10),
			ret:    date(2024, 1, 10),
			errIs:  reservation.ErrInvalidInterval,
		},
		{
			name:   "pickup after return",
			pickup: date(2024, 1, 12),
			ret:    date(2024, 1, 10),
			errIs:  reservation.ErrInvalidInterval,
		},
		{
			name:  "zero pickup",
			ret:   date(2024, 1, 10),
			errIs: reservation.ErrInvalidInterval,
		},
		{
			name:   "zero return",
			pickup: date(2024, 1, 10),
			errIs:  reservation.ErrInvalidInterval,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := reservation.NewDateRange(c.pickup, c.ret)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestDateRangeDays(t *testing.T) {
	cases := []struct {
		name   string
		pickup time.Time
		ret    time.Time
		days   int64
	}{
		{
			name:   "two whole days",
			pickup: date(2024, 1, 10),
			ret:    date(2024, 1, 12),
			days:   2,
		},
		{
			name:   "single day",
			pickup: date(2024, 1, 10),
			ret:    date(2024, 1, 11),
			days:   1,
		},
		{
			name:   "partial day rounds up",
			pickup: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			ret:    time.Date(2024, 1, 11, 15, 0, 0, 0, time.UTC),
			days:   2,
		},
		{
			name:   "under one day counts as one",
			pickup: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			ret:    time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC),
			days:   1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dr := mustRange(t, c.pickup, c.ret)
			assert.Equal(t, c.days, dr.Days())
		})
	}
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, date(2024, 1, 10), date(2024, 1, 15))

	cases := []struct {
		name     string
		other    reservation.DateRange
		overlaps bool
	}{
		{
			name:     "fully inside",
			other:    mustRange(t, date(2024, 1, 11), date(2024, 1, 13)),
			overlaps: true,
		},
		{
			name:     "fully covering",
			other:    mustRange(t, date(2024, 1, 1), date(2024, 1, 31)),
			overlaps: true,
		},
		{
			name:     "left overlap",
			other:    mustRange(t, date(2024, 1, 8), date(2024, 1, 11)),
			overlaps: true,
		},
		{
			name:     "right overlap",
			other:    mustRange(t, date(2024, 1, 14), date(2024, 1, 20)),
			overlaps: true,
		},
		{
			name:     "shared boundary day conflicts",
			other:    mustRange(t, date(2024, 1, 15), date(2024, 1, 20)),
			overlaps: true,
		},
		{
			name:     "shared pickup boundary conflicts",
			other:    mustRange(t, date(2024, 1, 5), date(2024, 1, 10)),
			overlaps: true,
		},
		{
			name:     "strictly before",
			other:    mustRange(t, date(2024, 1, 1), date(2024, 1, 9)),
			overlaps: false,
		},
		{
			name:     "strictly after",
			other:    mustRange(t, date(2024, 1, 16), date(2024, 1, 20)),
			overlaps: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, base.Overlaps(c.other))
			assert.Equal(t, c.overlaps, c.other.Overlaps(base))
		})
	}
}

func TestDateRangeEndedBy(t *testing.T) {
	dr := mustRange(t, date(2024, 1, 10), date(2024, 1, 12))

	assert.False(t, dr.EndedBy(date(2024, 1, 11)))
	assert.True(t, dr.EndedBy(date(2024, 1, 12)))
	assert.True(t, dr.EndedBy(date(2024, 1, 13)))
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := reservation.NewMoney(-1)
		require.ErrorIs(t, err, reservation.ErrNegativePrice)
	})

	t.Run("multiplies by days", func(t *testing.T) {
		m, err := reservation.NewMoney(5000)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), m.MultiplyDays(2).Cents())
	})
}
