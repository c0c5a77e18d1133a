package domain_test

import (
	"testing"
	"time"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_AddDaysReturnsNewValue(t *testing.T) {
	d := domain.NewDate(2024, time.January, 31)

	next := d.AddDays(1)

	assert.Equal(t, "2024-01-31", d.String())
	assert.Equal(t, "2024-02-01", next.String())
	assert.True(t, next.After(d))
	assert.True(t, d.Before(next))
}

func TestDate_Normalizes(t *testing.T) {
	d := domain.NewDate(2023, time.December, 32)
	assert.Equal(t, domain.NewDate(2024, time.January, 1), d)
	assert.True(t, d.Equal(domain.NewDate(2024, time.January, 1)))
}

func TestDate_Weekday(t *testing.T) {
	// 2024-01-15 is a Monday.
	assert.Equal(t, time.Monday, domain.NewDate(2024, time.January, 15).Weekday())
	assert.Equal(t, time.Sunday, domain.NewDate(2024, time.January, 21).Weekday())
}

func TestDate_At(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	d := domain.NewDate(2024, time.January, 15)

	got := d.At(loc, 9*60+30)

	assert.Equal(t, time.Date(2024, time.January, 15, 9, 30, 0, 0, loc), got)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), d.At(nil, 0))
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2024, time.March, 1), d)

	_, err = domain.ParseDate("03/01/2024")
	assert.Error(t, err)
}

func TestDateOf_UsesInstantLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	instant := time.Date(2024, time.January, 15, 23, 0, 0, 0, loc)

	assert.Equal(t, domain.NewDate(2024, time.January, 15), domain.DateOf(instant))
	assert.Equal(t, domain.NewDate(2024, time.January, 16), domain.DateOf(instant.UTC()))
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "08:30", want: 510},
		{in: "23:59", want: 1439},
		{in: "00:00", want: 0},
		{in: "24:00", wantErr: true},
		{in: "9", wantErr: true},
		{in: "09:7", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
			assert.Equal(t, tt.in, got.String())
		})
	}
}
