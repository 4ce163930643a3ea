// Package output serializes command results to stdout.
package output

import (
	"fmt"

	"github.com/autotestid/autotestid-cli/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ScanResult is the top-level output of the `scan` command.
type ScanResult struct {
	Source   string          `yaml:"source,omitempty" json:"source,omitempty"`
	Count    int             `yaml:"count"            json:"count"`
	Types    map[string]int  `yaml:"types,omitempty"  json:"types,omitempty"`
	Elements []model.Element `yaml:"elements"         json:"elements"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintJSON(v, PrettyOutput)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}
