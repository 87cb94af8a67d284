package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"wordfreq/internal/domain"
)

// CSVWriter writes a "word,count" header followed by one row per entry.
type CSVWriter struct{}

func (CSVWriter) Write(w io.Writer, rows []domain.WordCount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Word, strconv.Itoa(row.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
