// file: internals/features/finance/reports/service/xlsx_service.go
package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	helper "srcs_backend/internals/helpers"
)

const collectionSheet = "Collections"

// CollectionReportXLSX renders the collection report as a spreadsheet:
// one row per transaction plus a trailing grand total. Callers own
// closing the returned file.
func CollectionReportXLSX(report CollectionReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", collectionSheet); err != nil {
		return nil, err
	}

	headers := []string{"OR Number", "Date", "Student", "Grade Level", "Mode", "Processed By", "Amount"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(collectionSheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, r := range report.Rows {
		values := []any{
			r.OrNumber,
			r.PaidAt.Format("2006-01-02 15:04"),
			r.StudentName,
			r.GradeLevel,
			r.Mode,
			r.ProcessedBy,
			r.AmountDisplay,
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(collectionSheet, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	if err := f.SetCellValue(collectionSheet, fmt.Sprintf("F%d", row), "GRAND TOTAL"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(collectionSheet, fmt.Sprintf("G%d", row),
		helper.FormatPeso(report.GrandTotalCentavos)); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(collectionSheet, "A", "G", 20); err != nil {
		return nil, err
	}
	return f, nil
}
