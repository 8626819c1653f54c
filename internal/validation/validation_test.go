package validation

import (
	"testing"
	"time"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *time.Location
		wantErr bool
	}{
		{name: "empty means local", in: "", want: time.Local},
		{name: "local keyword", in: "local", want: time.Local},
		{name: "utc keyword", in: "utc", want: time.UTC},
		{name: "uppercase UTC", in: "UTC", want: time.UTC},
		{name: "unknown zone", in: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocation(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLocation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ParseLocation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLocation_IANAName(t *testing.T) {
	loc, err := ParseLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	if loc.String() != "Europe/Madrid" {
		t.Fatalf("ParseLocation(\"Europe/Madrid\") = %v", loc)
	}
}

func TestParseFiscalStartMonth(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Month
		wantErr bool
	}{
		{name: "empty means January", in: "", want: time.January},
		{name: "numeric month", in: "4", want: time.April},
		{name: "full name", in: "october", want: time.October},
		{name: "mixed case name", in: "April", want: time.April},
		{name: "three letter abbreviation", in: "apr", want: time.April},
		{name: "number zero", in: "0", wantErr: true},
		{name: "number thirteen", in: "13", wantErr: true},
		{name: "unknown name", in: "vendémiaire", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFiscalStartMonth(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFiscalStartMonth(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ParseFiscalStartMonth(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: FormatRFC3339},
		{in: "rfc3339", want: FormatRFC3339},
		{in: "ISO", want: FormatISO},
		{in: "unix", want: FormatUnix},
		{in: "unixms", want: FormatUnixMS},
		{in: "epoch", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2021, 6, 15, 10, 30, 45, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{format: FormatRFC3339, want: "2021-06-15T10:30:45Z"},
		{format: FormatISO, want: "2021-06-15T10:30:45.000Z"},
		{format: FormatUnix, want: "1623753045"},
		{format: FormatUnixMS, want: "1623753045000"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := FormatTimestamp(ts, tt.format); got != tt.want {
				t.Fatalf("FormatTimestamp(%s) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
