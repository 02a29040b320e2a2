package cli

import (
	"fmt"
	"strings"

	"github.com/lotto-works/ssqfetch/internal/output"
	"github.com/lotto-works/ssqfetch/pkg/models"
)

// saveRecords writes the records in the format implied by the file
// extension, falling back to the explicit format flag, then to CSV.
func saveRecords(records []models.DrawRecord, filepath, format string) error {
	switch resolveFormat(filepath, format) {
	case "json":
		return output.SaveJSON(records, filepath)
	case "xlsx":
		return output.SaveXLSX(records, filepath)
	default:
		return output.SaveCSV(records, filepath)
	}
}

func resolveFormat(filepath, format string) string {
	switch {
	case strings.HasSuffix(filepath, ".json"):
		return "json"
	case strings.HasSuffix(filepath, ".xlsx"):
		return "xlsx"
	case strings.HasSuffix(filepath, ".csv"):
		return "csv"
	}
	if format != "" {
		return strings.ToLower(format)
	}
	return "csv"
}

// validateFormat rejects unknown --format values early.
func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case "", "csv", "json", "xlsx":
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be csv, json, or xlsx)", format)
}
