package services

import (
	"fmt"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/apperrors"
	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
)

// CalculateNextDueDate steps a date forward by one frequency interval.
// Pure function; used at creation (from the start date) and after each
// payment (from the date just paid).
//
// Month-based frequencies clamp to the last day of the target month rather
// than letting the overflow spill into the following month: Jan 31 + 1
// month is Feb 28 (or 29), not Mar 2.
func CalculateNextDueDate(from time.Time, frequency domain.Frequency) (time.Time, error) {
	switch frequency {
	case domain.Daily:
		return from.AddDate(0, 0, 1), nil
	case domain.Weekly:
		return from.AddDate(0, 0, 7), nil
	case domain.Monthly:
		return addMonthsClamped(from, 1), nil
	case domain.Quarterly:
		return addMonthsClamped(from, 3), nil
	case domain.Yearly:
		return addMonthsClamped(from, 12), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, frequency)
	}
}

// addMonthsClamped adds months keeping the day-of-month, clamped to the
// last day of the target month. time.AddDate is unsuitable here because it
// normalizes overflow (Jan 31 + 1 month = Mar 2/3).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	targetMonth := time.Month(int(month) + months)

	last := lastDayOfMonth(year, targetMonth, t.Location())
	if day > last {
		day = last
	}
	return time.Date(year, targetMonth, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in the given month.
// time.Date normalizes month overflow, so targetMonth may exceed December.
func lastDayOfMonth(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the following month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
