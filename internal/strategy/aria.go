package strategy

import (
	"fmt"
	"strings"

	"github.com/autotestid/autotestid-cli/internal/model"
	"github.com/autotestid/autotestid-cli/internal/scan"
)

// applyAriaRules evaluates one element under aria-first. The first matching
// rule wins; an element never ends up with both a generated ARIA label and
// NeedsTestID set.
func applyAriaRules(el *model.Element) {
	text := strings.TrimSpace(el.Text)
	label := strings.TrimSpace(el.AriaLabel)
	role := strings.TrimSpace(el.AriaRole)

	switch {
	case el.HasAriaLabel && label != "":
		el.NeedsTestID = false
		el.Reason = fmt.Sprintf("existing aria-label %q already identifies this element", el.AriaLabel)
	case el.HasAriaRole && role != "" && text != "":
		el.NeedsTestID = false
		el.Reason = fmt.Sprintf("role %q together with text %q is a sufficient locator", el.AriaRole, text)
	case el.HasAriaRole && role != "":
		el.NeedsTestID = false
		el.Reason = fmt.Sprintf("role %q is a sufficient locator", el.AriaRole)
	case len(text) > 2:
		el.NeedsTestID = false
		el.SuggestedAriaLabel = suggestAriaLabel(*el)
		el.SuggestedAriaRole = model.MapAriaRole(el.Type)
		el.Reason = fmt.Sprintf("ARIA attributes will be added: aria-label=%q role=%q", el.SuggestedAriaLabel, el.SuggestedAriaRole)
	default:
		el.NeedsTestID = true
		el.Reason = "ARIA alone cannot identify this element; a data-testid is required"
	}
}

// suggestAriaLabel derives a human-readable label for an element that is
// getting generated ARIA attributes: element text plus its type, else the
// placeholder ("Enter ..."), else value plus type, else the name attribute
// with underscores as spaces plus type, else the type alone.
func suggestAriaLabel(el model.Element) string {
	if text := strings.TrimSpace(el.Text); text != "" {
		return text + " " + el.Type
	}
	if p := scan.AttrValue(el.Attrs, "placeholder"); p != "" {
		return "Enter " + p
	}
	if v := scan.AttrValue(el.Attrs, "value"); v != "" {
		return v + " " + el.Type
	}
	if n := scan.AttrValue(el.Attrs, "name"); n != "" {
		return strings.ReplaceAll(n, "_", " ") + " " + el.Type
	}
	return el.Type
}
