package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Kind classifies one step of a math string.
type Kind int

const (
	KindRound Kind = iota
	KindAdd
	KindSubtract
)

// Unit is a calendar unit addressed by a single-letter code.
type Unit int

const (
	UnitYear Unit = iota
	UnitQuarter
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

var unitNames = [...]string{"year", "quarter", "month", "week", "day", "hour", "minute", "second"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

// Operation is one tokenized step: shift the timestamp by Count Units,
// or round it to a Unit boundary. Operations are immutable; evaluation
// never feeds back into tokenization.
type Operation struct {
	Kind   Kind
	Count  int
	Unit   Unit
	Fiscal bool
}

var operatorKinds = map[byte]Kind{
	'/': KindRound,
	'+': KindAdd,
	'-': KindSubtract,
}

var unitCodes = map[byte]Unit{
	'y': UnitYear,
	'Q': UnitQuarter,
	'M': UnitMonth,
	'w': UnitWeek,
	'd': UnitDay,
	'h': UnitHour,
	'm': UnitMinute,
	's': UnitSecond,
}

// maxCountDigits caps the digit run of a count. A longer run
// invalidates the whole expression.
const maxCountDigits = 10

// tokenize scans a math string into its operations. Whitespace is
// stripped first. Any grammar violation fails the whole string; there
// is no recovery and no partial result.
func tokenize(math string) ([]Operation, error) {
	s := stripSpace(math)

	var ops []Operation
	for i := 0; i < len(s); {
		kind, ok := operatorKinds[s[i]]
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidExpression, string(s[i]), i)
		}
		i++

		count := 1
		explicit := false
		if i < len(s) && isDigit(s[i]) {
			start := i
			for i < len(s) && isDigit(s[i]) {
				i++
				if i-start > maxCountDigits {
					return nil, fmt.Errorf("%w: count longer than %d digits", ErrInvalidExpression, maxCountDigits)
				}
			}
			n, err := strconv.Atoi(s[start:i])
			if err != nil {
				return nil, fmt.Errorf("%w: bad count %q", ErrInvalidExpression, s[start:i])
			}
			count = n
			explicit = true
		}

		fiscal := false
		if i < len(s) && s[i] == 'f' {
			fiscal = true
			i++
		}

		if i >= len(s) {
			return nil, fmt.Errorf("%w: missing unit at end of %q", ErrInvalidExpression, s)
		}
		unit, ok := unitCodes[s[i]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown unit %q", ErrInvalidExpression, string(s[i]))
		}
		i++

		if kind == KindRound && explicit && count != 1 {
			return nil, fmt.Errorf("%w: cannot round to %d units", ErrInvalidExpression, count)
		}
		if fiscal && unit != UnitYear && unit != UnitQuarter {
			return nil, fmt.Errorf("%w: fiscal flag applies to years and quarters only", ErrInvalidExpression)
		}

		ops = append(ops, Operation{Kind: kind, Count: count, Unit: unit, Fiscal: fiscal})
	}
	return ops, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
