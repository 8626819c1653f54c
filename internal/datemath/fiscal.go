package datemath

import (
	"fmt"
	"time"
)

// roundFiscal snaps t to the start (or end) of the fiscal year or
// quarter containing it. Fiscal periods are calendar months offset by
// the configured start month: with an April start, fiscal years begin
// April 1 and fiscal quarters begin in April, July, October, and
// January.
//
// Rounding up is defined in terms of rounding down: the end boundary
// is the last nanosecond of the month that lies one fiscal period
// (minus a month) past the down boundary. The recursion is always
// exactly one level deep.
func roundFiscal(t time.Time, unit Unit, start time.Month, up bool) (time.Time, error) {
	var span int
	switch unit {
	case UnitYear:
		span = 12
	case UnitQuarter:
		span = 3
	default:
		return time.Time{}, fmt.Errorf("%w: fiscal rounding supports years and quarters only", ErrInvalidExpression)
	}

	if up {
		down, err := roundFiscal(t, unit, start, false)
		if err != nil {
			return time.Time{}, err
		}
		return endOf(addMonths(down, span-1), UnitMonth), nil
	}

	back := (int(t.Month()) - int(start) + 12) % span
	return addMonths(startOf(t, UnitMonth), -back), nil
}
