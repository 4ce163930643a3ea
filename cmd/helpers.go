package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/autotestid/autotestid-cli/internal/prompt"
)

// readHTML returns the HTML to analyze: the contents of the file argument,
// or stdin when no argument (or "-") is given. The second return names the
// source for report headers.
func readHTML(args []string) (string, string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "stdin", nil
}

// addTemplateFlag adds the --template flag for extra workflow template paths.
func addTemplateFlag(cmd *cobra.Command) {
	cmd.Flags().StringArray("template", nil, "Extra workflow template path, tried before the defaults (repeatable)")
}

// templateLoader builds the workflow template loader from the --template
// flag plus any configured template paths.
func templateLoader(cmd *cobra.Command) *prompt.Loader {
	paths, _ := cmd.Flags().GetStringArray("template")
	paths = append(paths, cfg.TemplatePaths...)
	return prompt.NewLoader(paths...)
}
