package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lotto-works/ssqfetch/internal/aggregate"
	"github.com/lotto-works/ssqfetch/internal/client"
	"github.com/lotto-works/ssqfetch/internal/ui"
)

var (
	historyPages    int
	historyPageSize int
	historyOutput   string
	historyFormat   string
	historyNoBar    bool
	issueStart      string
	issueEnd        string
	dayStart        string
	dayEnd          string
)

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch the draw history page by page",
	Long: `Walks the draw notice API page by page, deduplicating by issue number,
and exports the accumulated history to a tabular file.

Pagination stops at the first empty page, at the first page shorter than the
requested page size, or at the configured page limit, whichever comes first.
A small randomized delay is inserted between pages to stay polite toward the
remote service.`,
	Example: `  # Full history with defaults (60 pages of 30 draws, CSV)
  ssqfetch history

  # Export to Excel
  ssqfetch history --output=ssq_history.xlsx

  # Limit the walk and filter by date
  ssqfetch history --pages=5 --day-start=2024-01-01 --day-end=2024-06-30`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyPages, "pages", "p", 0, "Maximum number of pages to fetch (default from config)")
	historyCmd.Flags().IntVar(&historyPageSize, "page-size", 0, "Draws per page (the API caps this at 30)")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "ssq_history.csv", "Output file (.csv, .json, .xlsx)")
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "", "Output format when the extension is ambiguous: csv, json, or xlsx")
	historyCmd.Flags().BoolVar(&historyNoBar, "no-progress", false, "Disable the progress bar")
	historyCmd.Flags().StringVar(&issueStart, "issue-start", "", "First issue number to include")
	historyCmd.Flags().StringVar(&issueEnd, "issue-end", "", "Last issue number to include")
	historyCmd.Flags().StringVar(&dayStart, "day-start", "", "First draw date to include (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&dayEnd, "day-end", "", "Last draw date to include (YYYY-MM-DD)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := validateFormat(historyFormat); err != nil {
		return err
	}

	appCtx := GetApp()
	cfg := appCtx.Config

	pages := historyPages
	if pages <= 0 {
		pages = cfg.MaxPages
	}
	pageSize := historyPageSize
	if pageSize <= 0 {
		pageSize = cfg.PageSize
	}

	apiClient := appCtx.Client.WithFilter(client.Filter{
		IssueStart: issueStart,
		IssueEnd:   issueEnd,
		DayStart:   dayStart,
		DayEnd:     dayEnd,
	})

	var bar *progressbar.ProgressBar
	if !historyNoBar {
		bar = progressbar.NewOptions(pages,
			progressbar.OptionSetDescription("fetching draw pages"),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	agg := aggregate.New(apiClient, appCtx.Pacer, aggregate.Options{
		PageSize: pageSize,
		MaxPages: pages,
		OnPage: func(pageNo, fetched, kept int) {
			if bar != nil {
				_ = bar.Add(1)
			}
		},
	})

	log.Info().
		Int("pages", pages).
		Int("page_size", pageSize).
		Msg("Starting history fetch")

	records, err := agg.FetchAll(cmd.Context())
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("history fetch failed: %w", err)
	}

	if err := saveRecords(records, historyOutput, historyFormat); err != nil {
		return fmt.Errorf("failed to save output: %w", err)
	}

	fmt.Printf("%s %d draws saved to %s\n", ui.Success("✓"), len(records), historyOutput)
	return nil
}
