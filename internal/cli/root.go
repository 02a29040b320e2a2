package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lotto-works/ssqfetch/internal/app"
	"github.com/lotto-works/ssqfetch/internal/config"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "ssqfetch",
	Short:   "Fetch and export SSQ lottery draw history",
	Long:    `ssqfetch pulls 双色球 (SSQ) draw results from the China Welfare Lottery public API and exports them to CSV, JSON, or XLSX.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Initialize the application lazily, before running commands (avoid
	// starting the app for -h/help).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetApp() != nil {
			return nil
		}

		cfg, err := config.Load(rootCmd)
		if err != nil {
			return err
		}

		appCtx, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		SetApp(appCtx)
		return nil
	}

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		appCtx := GetApp()
		if appCtx == nil {
			return
		}
		_ = appCtx.Close(context.Background())
		SetApp(nil)
	}
}
