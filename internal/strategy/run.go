package strategy

import (
	"fmt"
	"strings"

	"github.com/autotestid/autotestid-cli/internal/scan"
)

// TemplateSource supplies the optional two-phase workflow instructions. A
// nil source or a not-found lookup falls back to the built-in selection
// prompt.
type TemplateSource interface {
	Load() (content string, found bool)
}

// Run is the full workflow shared by the CLI and the MCP tool: scan the
// HTML, resolve the strategy, and return the report (or the appropriate
// prompt). It never fails; every outcome is an informative string.
func Run(html, strategyArg string, templates TemplateSource) string {
	if strings.TrimSpace(html) == "" {
		return "No HTML content provided. Pass the markup you want annotated and try again."
	}

	strat, ok := Parse(strategyArg)
	if !ok {
		return fmt.Sprintf("Unrecognized strategy %q.\n\n%s", strategyArg, SelectionPrompt(html))
	}

	if strat == Unset {
		if templates != nil {
			if content, found := templates.Load(); found {
				// The workflow template replaces the built-in prompt entirely.
				return content + "\n\nHTML to annotate:\n" + html
			}
		}
		return SelectionPrompt(html)
	}

	return Evaluate(scan.Scan(html), strat)
}
