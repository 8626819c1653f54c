package datemath

import (
	"fmt"
	"math"
	"time"
)

// EvaluateMath applies a math string to a starting timestamp and
// returns the shifted result. An empty math string is a no-op that
// returns start unchanged. Every step takes a timestamp value and
// returns a new one; the input is never mutated, so callers may share
// a single anchor across calls.
func EvaluateMath(math string, start time.Time, opts Options) (time.Time, error) {
	ops, err := tokenize(math)
	if err != nil {
		return time.Time{}, err
	}

	t := start
	for _, op := range ops {
		t, err = apply(op, t, opts)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t, nil
}

func apply(op Operation, t time.Time, opts Options) (time.Time, error) {
	switch op.Kind {
	case KindAdd:
		return shift(t, op.Count, op.Unit), nil
	case KindSubtract:
		return shift(t, -op.Count, op.Unit), nil
	case KindRound:
		if op.Fiscal {
			return roundFiscal(t, op.Unit, opts.fiscalStart(), opts.RoundUp)
		}
		if opts.RoundUp {
			return endOf(t, op.Unit), nil
		}
		return startOf(t, op.Unit), nil
	}
	return time.Time{}, fmt.Errorf("%w: unknown operation kind %d", ErrInvalidExpression, op.Kind)
}

// shift moves t by n units. Variable-length units go through calendar
// arithmetic with end-of-month clamping; fixed-length units are plain
// duration offsets.
func shift(t time.Time, n int, unit Unit) time.Time {
	switch unit {
	case UnitYear:
		return addMonths(t, n*12)
	case UnitQuarter:
		return addMonths(t, n*3)
	case UnitMonth:
		return addMonths(t, n)
	case UnitWeek:
		return t.AddDate(0, 0, n*7)
	case UnitDay:
		return t.AddDate(0, 0, n)
	case UnitHour:
		return addDuration(t, n, time.Hour)
	case UnitMinute:
		return addDuration(t, n, time.Minute)
	default:
		return addDuration(t, n, time.Second)
	}
}

// addDuration shifts t by n fixed-length units. time.Duration tops out
// around 292 years, so a ten-digit hour count would wrap if multiplied
// directly; counts past the limit go through time.Date instead, which
// normalizes an oversized seconds field exactly.
func addDuration(t time.Time, n int, unit time.Duration) time.Time {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if int64(abs) <= int64(math.MaxInt64)/int64(unit) {
		return t.Add(time.Duration(n) * unit)
	}

	secs := int64(n) * int64(unit/time.Second)
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec+int(secs), t.Nanosecond(), t.Location())
}

// addMonths shifts t by n months, clamping the day of month to the
// target month's length: Jan 31 plus one month is Feb 28 (or 29), not
// Mar 2. time.AddDate would normalize the overflow instead, which
// makes month math non-idempotent in surprising ways.
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	m := int(month) - 1 + n
	y := year + m/12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	target := time.Month(m + 1)
	if last := daysIn(y, target); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(y, target, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month. Day zero of
// the following month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// startOf truncates t to the beginning of unit. Weeks begin on Monday
// (ISO 8601); quarters are the calendar quarters starting January,
// April, July, and October.
func startOf(t time.Time, unit Unit) time.Time {
	year, month, day := t.Date()
	loc := t.Location()
	switch unit {
	case UnitYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	case UnitQuarter:
		return time.Date(year, month-(month-1)%3, 1, 0, 0, 0, 0, loc)
	case UnitMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case UnitWeek:
		base := time.Date(year, month, day, 0, 0, 0, 0, loc)
		offset := (int(t.Weekday()) - int(time.Monday) + 7) % 7
		return base.AddDate(0, 0, -offset)
	case UnitDay:
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	case UnitHour:
		return time.Date(year, month, day, t.Hour(), 0, 0, 0, loc)
	case UnitMinute:
		return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, loc)
	default:
		return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), 0, loc)
	}
}

// endOf moves t to the last nanosecond of unit: the start of the next
// period minus one nanosecond.
func endOf(t time.Time, unit Unit) time.Time {
	return shift(startOf(t, unit), 1, unit).Add(-time.Nanosecond)
}
