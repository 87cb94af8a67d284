// Package report renders ranked word counts as tabular files.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"wordfreq/internal/port"
)

// ErrUnknownFormat is returned for an unsupported report format.
var ErrUnknownFormat = errors.New("unknown report format")

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

var header = []string{"word", "count"}

// ForFormat returns the writer for a format name.
func ForFormat(format string) (port.ReportWriter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return CSVWriter{}, nil
	case FormatJSON:
		return JSONWriter{}, nil
	case FormatXLSX:
		return XLSXWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ForPath picks a writer from format, or from the file extension of path
// when format is empty.
func ForPath(path, format string) (port.ReportWriter, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	return ForFormat(format)
}
