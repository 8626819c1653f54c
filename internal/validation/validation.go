// Package validation parses and validates the flag values the CLI
// accepts: time zones, fiscal start months, and output layouts.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseLocation resolves a --tz flag value to a *time.Location.
// Accepts an IANA zone name ("Europe/Madrid"), "utc", or "local"
// (case-insensitive). An empty value means the local zone.
func ParseLocation(name string) (*time.Location, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "local":
		return time.Local, nil
	case "utc", "z":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q", name)
	}
	return loc, nil
}

// ParseFiscalStartMonth resolves a --fiscal-start flag value to a
// time.Month. Accepts a month number (1-12) or an English month name,
// full or three-letter ("april", "apr"). An empty value means January.
func ParseFiscalStartMonth(value string) (time.Month, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return time.January, nil
	}

	if n, err := strconv.Atoi(v); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("fiscal start month %d out of range 1-12", n)
		}
		return time.Month(n), nil
	}

	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if v == name || v == name[:3] {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown fiscal start month %q", value)
}

// Layouts accepted by --format.
const (
	FormatRFC3339 = "rfc3339"
	FormatISO     = "iso"
	FormatUnix    = "unix"
	FormatUnixMS  = "unixms"
)

// ParseOutputFormat validates a --format flag value and returns its
// canonical name. An empty value means RFC 3339.
func ParseOutputFormat(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return FormatRFC3339, nil
	case FormatRFC3339, FormatISO, FormatUnix, FormatUnixMS:
		return v, nil
	}
	return "", fmt.Errorf("unknown output format %q (use rfc3339, iso, unix, or unixms)", value)
}

// FormatTimestamp renders t according to a canonical format name.
func FormatTimestamp(t time.Time, format string) string {
	switch format {
	case FormatUnix:
		return strconv.FormatInt(t.Unix(), 10)
	case FormatUnixMS:
		return strconv.FormatInt(t.UnixMilli(), 10)
	case FormatISO:
		return t.Format("2006-01-02T15:04:05.000Z07:00")
	default:
		return t.Format(time.RFC3339Nano)
	}
}
