package datemath

import (
	"errors"
	"testing"
	"time"
)

func TestEvaluateMath_FiscalRoundDown(t *testing.T) {
	loc := time.FixedZone("Test", -5*60*60)

	tests := []struct {
		name  string
		in    string
		start time.Time
		month time.Month
		want  time.Time
	}{
		{
			name:  "fiscal year with April start",
			in:    "/fy",
			start: time.Date(2021, 6, 15, 10, 30, 0, 0, loc),
			month: time.April,
			want:  time.Date(2021, 4, 1, 0, 0, 0, 0, loc),
		},
		{
			name:  "fiscal year crosses calendar year boundary",
			in:    "/fy",
			start: time.Date(2021, 2, 10, 8, 0, 0, 0, loc),
			month: time.April,
			want:  time.Date(2020, 4, 1, 0, 0, 0, 0, loc),
		},
		{
			name:  "fiscal quarter with April start",
			in:    "/fQ",
			start: time.Date(2021, 6, 15, 10, 30, 0, 0, loc),
			month: time.April,
			want:  time.Date(2021, 4, 1, 0, 0, 0, 0, loc),
		},
		{
			name:  "fiscal quarter in the trailing quarter",
			in:    "/fQ",
			start: time.Date(2021, 2, 10, 8, 0, 0, 0, loc),
			month: time.April,
			want:  time.Date(2021, 1, 1, 0, 0, 0, 0, loc),
		},
		{
			name:  "default start matches calendar year",
			in:    "/fy",
			start: time.Date(2021, 6, 15, 10, 30, 0, 0, loc),
			month: 0,
			want:  time.Date(2021, 1, 1, 0, 0, 0, 0, loc),
		},
		{
			name:  "october start used by US federal fiscal years",
			in:    "/fy",
			start: time.Date(2021, 6, 15, 10, 30, 0, 0, loc),
			month: time.October,
			want:  time.Date(2020, 10, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Location: loc, FiscalYearStartMonth: tt.month}
			got, err := EvaluateMath(tt.in, tt.start, opts)
			if err != nil {
				t.Fatalf("EvaluateMath(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("EvaluateMath(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEvaluateMath_FiscalRoundUp(t *testing.T) {
	loc := time.FixedZone("Test", -5*60*60)
	start := time.Date(2021, 6, 15, 10, 30, 0, 0, loc)
	lastNanosecond := int(time.Second - time.Nanosecond)

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "fiscal year ends the day before the next one starts",
			in:   "/fy",
			want: time.Date(2022, 3, 31, 23, 59, 59, lastNanosecond, loc),
		},
		{
			name: "fiscal quarter",
			in:   "/fQ",
			want: time.Date(2021, 6, 30, 23, 59, 59, lastNanosecond, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Location: loc, RoundUp: true, FiscalYearStartMonth: time.April}
			got, err := EvaluateMath(tt.in, start, opts)
			if err != nil {
				t.Fatalf("EvaluateMath(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("EvaluateMath(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// The up boundary must be the last instant of the period whose start
// the down boundary computes, for every month of the year.
func TestFiscalBoundariesAreAdjacent(t *testing.T) {
	loc := time.UTC
	for month := time.January; month <= time.December; month++ {
		start := time.Date(2021, month, 15, 12, 0, 0, 0, loc)
		for _, unit := range []Unit{UnitYear, UnitQuarter} {
			down, err := roundFiscal(start, unit, time.April, false)
			if err != nil {
				t.Fatalf("roundFiscal down (%v, %v) error = %v", month, unit, err)
			}
			up, err := roundFiscal(start, unit, time.April, true)
			if err != nil {
				t.Fatalf("roundFiscal up (%v, %v) error = %v", month, unit, err)
			}

			span := 12
			if unit == UnitQuarter {
				span = 3
			}
			next := addMonths(down, span)
			if !up.Add(time.Nanosecond).Equal(next) {
				t.Fatalf("month %v unit %v: up %v is not adjacent to next period start %v", month, unit, up, next)
			}
			if down.After(start) || up.Before(start) {
				t.Fatalf("month %v unit %v: %v not within [%v, %v]", month, unit, start, down, up)
			}
		}
	}
}

func TestRoundFiscal_UnsupportedUnit(t *testing.T) {
	start := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	if _, err := roundFiscal(start, UnitMonth, time.April, false); !errors.Is(err, ErrInvalidExpression) {
		t.Fatalf("roundFiscal(month) error = %v, want ErrInvalidExpression", err)
	}
}
