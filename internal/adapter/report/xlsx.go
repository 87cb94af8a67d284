package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"wordfreq/internal/domain"
)

// SheetName is the worksheet holding the report rows.
const SheetName = "words"

// XLSXWriter writes a single-sheet workbook with a header row.
type XLSXWriter struct{}

func (XLSXWriter) Write(w io.Writer, rows []domain.WordCount) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{header[0], header[1]}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{row.Word, row.Count}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
