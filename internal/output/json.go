package output

import (
	"encoding/json"
	"os"

	"github.com/lotto-works/ssqfetch/pkg/models"
)

// SaveJSON writes the draw records to an indented JSON array.
func SaveJSON(records []models.DrawRecord, filepath string) error {
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, content, 0644)
}
