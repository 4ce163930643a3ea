package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autotestid/autotestid-cli/internal/config"
	"github.com/autotestid/autotestid-cli/internal/logging"
	"github.com/autotestid/autotestid-cli/internal/output"
	"github.com/autotestid/autotestid-cli/internal/version"
)

// cfg holds defaults loaded from .autotestid.yaml; flags take precedence.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "autotestid-cli",
	Short: "Suggest test-locator attributes for HTML markup",
	Long:  "A CLI tool that scans HTML for interactive elements and proposes data-testid or ARIA attributes, directly or as an MCP server.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format for structured commands: yaml, json")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		logging.Setup(level)

		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
