package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lotto-works/ssqfetch/internal/ui"
	"github.com/lotto-works/ssqfetch/pkg/models"
)

var (
	detailOutput   string
	detailMarkdown bool
)

// detailCmd represents the detail command.
var detailCmd = &cobra.Command{
	Use:   "detail <link>",
	Short: "Fetch one draw's announcement page",
	Long: `Fetches the announcement page behind a draw's details link and extracts
the article body. Accepts either the absolute URL or the site-relative path
as returned by the API.`,
	Example: `  # Print the announcement text
  ssqfetch detail /ygkj/kjgg/ssq/202405/t20240523_123456.html

  # Save as Markdown
  ssqfetch detail https://www.cwl.gov.cn/ygkj/detail/2024058 --markdown -o draw.md`,
	Args: cobra.ExactArgs(1),
	RunE: runDetail,
}

func init() {
	rootCmd.AddCommand(detailCmd)

	detailCmd.Flags().StringVarP(&detailOutput, "output", "o", "", "File path to save the article (stdout if empty)")
	detailCmd.Flags().BoolVarP(&detailMarkdown, "markdown", "m", false, "Convert the article to Markdown")
}

func runDetail(cmd *cobra.Command, args []string) error {
	pageURL := models.ResolveLink(args[0])
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		return fmt.Errorf("invalid link: %s", args[0])
	}

	appCtx := GetApp()
	article, err := appCtx.Detail.Fetch(cmd.Context(), pageURL)
	if err != nil {
		return fmt.Errorf("failed to fetch detail page: %w", err)
	}

	content := article.Text
	if detailMarkdown {
		content, err = article.Markdown()
		if err != nil {
			return fmt.Errorf("markdown conversion failed: %w", err)
		}
	}

	if detailOutput == "" {
		if article.Title != "" {
			fmt.Println(ui.Bold(article.Title))
			fmt.Println()
		}
		fmt.Println(content)
		return nil
	}

	if err := os.WriteFile(detailOutput, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Printf("%s Saved to %s\n", ui.Success("✓"), detailOutput)
	return nil
}
