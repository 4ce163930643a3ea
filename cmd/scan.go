package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/autotestid/autotestid-cli/internal/model"
	"github.com/autotestid/autotestid-cli/internal/output"
	"github.com/autotestid/autotestid-cli/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan HTML for interactive elements",
	Long: `Scan HTML from a file or stdin and print every interactive element found,
with its extracted text, attributes, and suggested data-testid.

Examples:
  autotestid-cli scan page.html
  cat page.html | autotestid-cli scan --types button,link
  autotestid-cli scan page.html --format json --pretty`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().String("types", "", "Comma-separated element types to include (e.g. \"button,link\")")
	scanCmd.Flags().String("text", "", "Only include elements whose text or attributes contain this substring")
	scanCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runScan(cmd *cobra.Command, args []string) error {
	html, source, err := readHTML(args)
	if err != nil {
		return err
	}

	types, _ := cmd.Flags().GetString("types")
	text, _ := cmd.Flags().GetString("text")

	elements := scan.Scan(html)
	if types != "" {
		elements = model.FilterByTypes(elements, strings.Split(types, ","))
	}
	if text != "" {
		elements = model.FilterByText(elements, text)
	}
	if elements == nil {
		elements = []model.Element{}
	}

	return output.Print(output.ScanResult{
		Source:   source,
		Count:    len(elements),
		Types:    model.CountByType(elements),
		Elements: elements,
	})
}
