package export

import (
	"github.com/xuri/excelize/v2"

	"benchgate/domain/bench"
	"benchgate/internal/errors"
)

// XLSXExporter writes the same columns as the CSV exporter into a workbook,
// with real numeric cells so spreadsheet consumers can chart directly.
type XLSXExporter struct {
	sheet string
}

// NewXLSXExporter creates an XLSX exporter writing to the given sheet name.
func NewXLSXExporter(sheet string) *XLSXExporter {
	if sheet == "" {
		sheet = "Results"
	}
	return &XLSXExporter{sheet: sheet}
}

// Export writes the summaries to an .xlsx workbook at path.
func (e *XLSXExporter) Export(path string, summaries []bench.SummaryStats) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(e.sheet)
	if err != nil {
		return errors.Wrapf(err, "creating sheet %s", e.sheet)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "removing default sheet")
	}

	for col, name := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Wrap(err, "computing header cell")
		}
		if err := f.SetCellValue(e.sheet, cell, name); err != nil {
			return errors.Wrapf(err, "writing header %s", name)
		}
	}

	for i, s := range summaries {
		values := []interface{}{s.Name.String(), s.Mean, s.Stdev, s.CI.Low, s.CI.High, s.CV, s.N}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return errors.Wrap(err, "computing data cell")
			}
			if err := f.SetCellValue(e.sheet, cell, v); err != nil {
				return errors.Wrapf(err, "writing row for %s", s.Name)
			}
		}
	}

	return errors.Wrapf(f.SaveAs(path), "saving workbook %s", path)
}
