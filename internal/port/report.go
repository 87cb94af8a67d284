package port

import (
	"io"

	"wordfreq/internal/domain"
)

// ReportWriter renders ranked rows, preserving their order.
type ReportWriter interface {
	Write(w io.Writer, rows []domain.WordCount) error
}
