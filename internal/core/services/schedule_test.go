package services_test

import (
	"testing"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/apperrors"
	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/finbuddy/finbuddy_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateNextDueDate(t *testing.T) {
	tests := []struct {
		name      string
		from      time.Time
		frequency domain.Frequency
		want      time.Time
	}{
		{"daily", date(2024, time.March, 10), domain.Daily, date(2024, time.March, 11)},
		{"daily across month end", date(2024, time.January, 31), domain.Daily, date(2024, time.February, 1)},
		{"weekly", date(2024, time.March, 10), domain.Weekly, date(2024, time.March, 17)},
		{"weekly across year end", date(2023, time.December, 28), domain.Weekly, date(2024, time.January, 4)},
		{"monthly mid-month", date(2024, time.January, 15), domain.Monthly, date(2024, time.February, 15)},
		{"monthly clamps jan 31 to leap feb", date(2024, time.January, 31), domain.Monthly, date(2024, time.February, 29)},
		{"monthly clamps jan 31 to non-leap feb", date(2025, time.January, 31), domain.Monthly, date(2025, time.February, 28)},
		{"monthly clamps may 31 to june 30", date(2024, time.May, 31), domain.Monthly, date(2024, time.June, 30)},
		{"monthly across year end", date(2024, time.December, 15), domain.Monthly, date(2025, time.January, 15)},
		{"quarterly", date(2024, time.February, 10), domain.Quarterly, date(2024, time.May, 10)},
		{"quarterly clamps nov 30 from aug 31", date(2024, time.August, 31), domain.Quarterly, date(2024, time.November, 30)},
		{"quarterly across year end", date(2024, time.November, 15), domain.Quarterly, date(2025, time.February, 15)},
		{"yearly", date(2024, time.March, 10), domain.Yearly, date(2025, time.March, 10)},
		{"yearly clamps leap day", date(2024, time.February, 29), domain.Yearly, date(2025, time.February, 28)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := services.CalculateNextDueDate(tc.from, tc.frequency)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}

func TestCalculateNextDueDate_UnknownFrequency(t *testing.T) {
	_, err := services.CalculateNextDueDate(date(2024, time.March, 10), domain.Frequency("FORTNIGHTLY"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCalculateNextDueDate_PreservesTimeOfDay(t *testing.T) {
	from := time.Date(2024, time.January, 31, 9, 30, 0, 0, time.UTC)
	got, err := services.CalculateNextDueDate(from, domain.Monthly)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 29, got.Day())
}
