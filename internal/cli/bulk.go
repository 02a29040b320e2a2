package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lotto-works/ssqfetch/internal/ui"
	"github.com/lotto-works/ssqfetch/pkg/models"
)

var (
	bulkCount  int
	bulkOutput string
	bulkFormat string
)

// bulkCmd represents the bulk command: one oversized request instead of the
// paging walk. The API caps the count server-side, so the result may be
// shorter than asked for.
var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Fetch draw history in one oversized request",
	Long: `Requests a large number of draws as a single page, skipping the paging
aggregator entirely. Faster than history mode but bounded by whatever cap the
API enforces on the page size.`,
	Example: `  # Grab up to 2000 draws in one request
  ssqfetch bulk

  # Smaller request, Excel output
  ssqfetch bulk --count=500 --output=ssq.xlsx`,
	Args: cobra.NoArgs,
	RunE: runBulk,
}

func init() {
	rootCmd.AddCommand(bulkCmd)

	bulkCmd.Flags().IntVarP(&bulkCount, "count", "c", 0, "Number of draws to request (default from config)")
	bulkCmd.Flags().StringVarP(&bulkOutput, "output", "o", "ssq_history.csv", "Output file (.csv, .json, .xlsx)")
	bulkCmd.Flags().StringVarP(&bulkFormat, "format", "f", "", "Output format when the extension is ambiguous: csv, json, or xlsx")
}

func runBulk(cmd *cobra.Command, args []string) error {
	if err := validateFormat(bulkFormat); err != nil {
		return err
	}

	appCtx := GetApp()
	count := bulkCount
	if count <= 0 {
		count = appCtx.Config.BulkSize
	}

	log.Info().Int("count", count).Msg("Starting bulk fetch")

	draws, err := appCtx.Client.FetchPage(cmd.Context(), count, 1)
	if err != nil {
		return fmt.Errorf("bulk fetch failed: %w", err)
	}

	records := make([]models.DrawRecord, 0, len(draws))
	for _, raw := range draws {
		records = append(records, models.NewDrawRecord(raw))
	}

	if err := saveRecords(records, bulkOutput, bulkFormat); err != nil {
		return fmt.Errorf("failed to save output: %w", err)
	}

	fmt.Printf("%s %d draws saved to %s\n", ui.Success("✓"), len(records), bulkOutput)
	return nil
}
