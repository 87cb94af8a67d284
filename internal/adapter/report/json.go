package report

import (
	"encoding/json"
	"io"

	"wordfreq/internal/domain"
)

// JSONWriter writes an indented array of {"word", "count"} objects.
type JSONWriter struct{}

func (JSONWriter) Write(w io.Writer, rows []domain.WordCount) error {
	if rows == nil {
		rows = []domain.WordCount{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rows)
}
