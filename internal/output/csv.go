package output

import (
	"encoding/csv"
	"os"

	"github.com/lotto-works/ssqfetch/pkg/models"
)

// SaveCSV writes the draw records to a CSV file, header row first.
func SaveCSV(records []models.DrawRecord, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writer.Write(row(rec)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
