package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lotto-works/ssqfetch/pkg/models"
)

const sheetName = "draws"

// SaveXLSX writes the draw records to an Excel workbook with a single sheet.
func SaveXLSX(records []models.DrawRecord, filepath string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := writeRow(f, 1, columns); err != nil {
		return err
	}
	for i, rec := range records {
		if err := writeRow(f, i+2, row(rec)); err != nil {
			return err
		}
	}

	return f.SaveAs(filepath)
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheetName, cell, &cells)
}
