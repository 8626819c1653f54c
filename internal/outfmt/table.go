package outfmt

import (
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// NewTabWriter returns a tabwriter configured for stdout.
func NewTabWriter() *tabwriter.Writer {
	return NewTabWriterTo(os.Stdout)
}

// NewTabWriterTo returns a tabwriter configured for w.
func NewTabWriterTo(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// SanitizeTab replaces tab characters with spaces for clean tabwriter output.
func SanitizeTab(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}
