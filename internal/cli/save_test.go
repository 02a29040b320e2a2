package cli

import (
	"path/filepath"
	"testing"

	"github.com/lotto-works/ssqfetch/pkg/models"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		path   string
		format string
		want   string
	}{
		{"out.csv", "", "csv"},
		{"out.json", "", "json"},
		{"out.xlsx", "", "xlsx"},
		{"out.dat", "json", "json"},
		{"out.dat", "XLSX", "xlsx"},
		{"out.dat", "", "csv"},
		{"out.json", "csv", "json"}, // extension wins over flag
	}

	for _, tt := range tests {
		if got := resolveFormat(tt.path, tt.format); got != tt.want {
			t.Errorf("resolveFormat(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	for _, ok := range []string{"", "csv", "json", "xlsx", "CSV"} {
		if err := validateFormat(ok); err != nil {
			t.Errorf("validateFormat(%q) = %v, want nil", ok, err)
		}
	}
	if err := validateFormat("parquet"); err == nil {
		t.Error("validateFormat(\"parquet\") = nil, want error")
	}
}

func TestSaveRecords(t *testing.T) {
	records := []models.DrawRecord{{Issue: "2024001", RedNumbers: []string{"1", "2"}}}

	dir := t.TempDir()
	for _, name := range []string{"d.csv", "d.json", "d.xlsx"} {
		path := filepath.Join(dir, name)
		if err := saveRecords(records, path, ""); err != nil {
			t.Errorf("saveRecords(%s) failed: %v", name, err)
		}
	}
}
