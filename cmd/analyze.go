package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autotestid/autotestid-cli/internal/strategy"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the annotation workflow on HTML",
	Long: `Run the full annotation workflow on HTML from a file or stdin and print the
report. Without --strategy (or a configured default) the strategy selection
prompt is printed instead of an evaluation.

Examples:
  autotestid-cli analyze page.html --strategy aria-first
  cat page.html | autotestid-cli analyze --strategy test-attribute-first`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().String("strategy", "", "Locator strategy: aria-first or test-attribute-first")
	addTemplateFlag(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	html, _, err := readHTML(args)
	if err != nil {
		return err
	}

	strategyArg, _ := cmd.Flags().GetString("strategy")
	if strategyArg == "" {
		strategyArg = cfg.Strategy
	}

	// Run never fails: bad input and unknown strategies come back as
	// guidance text, matching the MCP tool's behavior.
	fmt.Println(strategy.Run(html, strategyArg, templateLoader(cmd)))
	return nil
}
