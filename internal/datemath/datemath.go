// Package datemath resolves relative date-math expressions such as
// "now-6h", "now/d", or "2021-01-01||+1M/M" into concrete timestamps.
//
// An expression is an anchor (the literal "now", or an ISO 8601
// date/time optionally followed by "||") plus a chain of operations
// applied left to right: "+" and "-" shift by a number of units, "/"
// rounds to a unit boundary. Units are y, Q, M, w, d, h, m, and s; a
// round may prefix its unit with "f" to use fiscal year or quarter
// boundaries instead of calendar ones.
package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidExpression reports input that does not match the date math
// grammar. A failed parse never returns a partial timestamp.
var ErrInvalidExpression = errors.New("invalid date math expression")

// Options control how an expression is resolved.
type Options struct {
	// RoundUp moves "/" rounds to the end of the unit instead of the
	// start (the last nanosecond before the next period begins).
	RoundUp bool

	// Location is used for the "now" anchor and for zone-less ISO
	// anchors. Defaults to time.Local.
	Location *time.Location

	// FiscalYearStartMonth shifts fiscal year and quarter boundaries.
	// Zero means January, i.e. fiscal periods match calendar ones.
	FiscalYearStartMonth time.Month
}

func (o Options) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.Local
}

func (o Options) fiscalStart() time.Month {
	if o.FiscalYearStartMonth == 0 {
		return time.January
	}
	return o.FiscalYearStartMonth
}

const anchorSeparator = "||"

// IsMathExpression reports whether text is eligible for date math
// parsing: it starts with "now" or contains the "||" separator.
// Plain dates like "2021-01-01" are not math expressions and should
// be handled by the caller as ordinary dates.
func IsMathExpression(text string) bool {
	return strings.HasPrefix(text, "now") || strings.Contains(text, anchorSeparator)
}

// Resolve parses text using the current time as the "now" anchor.
func Resolve(text string, opts Options) (time.Time, error) {
	return ResolveAt(text, time.Now(), opts)
}

// ResolveAt parses text using now as the reference instant for the
// "now" anchor. This variant enables deterministic testing with a
// fixed "now".
func ResolveAt(text string, now time.Time, opts Options) (time.Time, error) {
	anchor, math, err := splitExpression(text, now, opts)
	if err != nil {
		return time.Time{}, err
	}
	return EvaluateMath(math, anchor, opts)
}

// splitExpression resolves the anchor half of an expression and
// returns it together with the math suffix. A "now" prefix is itself
// the anchor, so everything after it is math; otherwise the text
// splits on the first "||", with an absent separator meaning a bare
// ISO date and no math at all.
func splitExpression(text string, now time.Time, opts Options) (time.Time, string, error) {
	if strings.HasPrefix(text, "now") {
		return now.In(opts.location()), text[len("now"):], nil
	}

	anchorPart := text
	mathPart := ""
	if idx := strings.Index(text, anchorSeparator); idx >= 0 {
		anchorPart = text[:idx]
		mathPart = text[idx+len(anchorSeparator):]
	}

	anchor, err := parseAnchor(anchorPart, opts.location())
	if err != nil {
		return time.Time{}, "", err
	}
	return anchor, mathPart, nil
}

// anchorLayouts are the ISO 8601 shapes accepted for absolute anchors.
// Zone-less layouts are interpreted in the configured location.
var anchorLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseAnchor(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range anchorLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad anchor %q", ErrInvalidExpression, s)
}
