package strategy

import (
	"fmt"
	"strings"

	"github.com/autotestid/autotestid-cli/internal/model"
)

// SelectionPrompt is the Phase-1 response when no strategy has been chosen:
// it names both strategies with their effect and echoes the caller's HTML so
// the follow-up call carries everything it needs.
func SelectionPrompt(html string) string {
	var b strings.Builder
	b.WriteString("Before annotating, choose a locator strategy:\n\n")
	fmt.Fprintf(&b, "1. %s — prefer accessibility attributes; add aria-label/role where they suffice and fall back to data-testid only when ARIA cannot identify the element.\n", AriaFirst)
	fmt.Fprintf(&b, "2. %s — add a data-testid to every interactive element that does not already have one; no ARIA reasoning.\n", TestAttributeFirst)
	b.WriteString("\nReply with the strategy name to continue.\n")
	b.WriteString("\nHTML to annotate:\n")
	b.WriteString(html)
	return b.String()
}

// Evaluate runs the chosen strategy over the scanned elements and renders
// the report. Callers resolve Unset before evaluating.
func Evaluate(elements []model.Element, strat Strategy) string {
	switch strat {
	case TestAttributeFirst:
		return evaluateTestFirst(elements)
	case AriaFirst:
		return evaluateAriaFirst(elements)
	}
	return ""
}

func evaluateTestFirst(elements []model.Element) string {
	var tagged, needs []model.Element
	for i := range elements {
		el := &elements[i]
		if el.HasTestID {
			el.NeedsTestID = false
			el.Reason = "already has a data-testid; preserved unchanged"
			tagged = append(tagged, *el)
		} else {
			el.NeedsTestID = true
			el.Reason = fmt.Sprintf("no data-testid present; suggesting %q", el.SuggestedTestID)
			needs = append(needs, *el)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Test-attribute-first analysis: %d interactive element(s) found.\n\n", len(elements))

	fmt.Fprintf(&b, "Already tagged (%d):\n", len(tagged))
	for _, el := range tagged {
		fmt.Fprintf(&b, "  %d. %s%s — existing data-testid preserved\n", el.Position, el.Type, elementLabel(el))
	}
	fmt.Fprintf(&b, "\nNeeds data-testid (%d):\n", len(needs))
	for _, el := range needs {
		fmt.Fprintf(&b, "  %d. %s%s → data-testid=%q\n", el.Position, el.Type, elementLabel(el), el.SuggestedTestID)
	}

	renderPreview(&b, elements, TestAttributeFirst)

	b.WriteString("\nNext step: apply the suggested data-testid attributes; elements that already carry one are left untouched.\n")
	return b.String()
}

func evaluateAriaFirst(elements []model.Element) string {
	var sufficient, ariaAdded, needsID []model.Element
	for i := range elements {
		el := &elements[i]
		applyAriaRules(el)
		switch {
		case el.SuggestedAriaLabel != "":
			ariaAdded = append(ariaAdded, *el)
		case el.NeedsTestID:
			needsID = append(needsID, *el)
		default:
			sufficient = append(sufficient, *el)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Aria-first analysis: %d interactive element(s) found.\n\n", len(elements))

	fmt.Fprintf(&b, "Sufficient ARIA/semantics already present (%d):\n", len(sufficient))
	for _, el := range sufficient {
		fmt.Fprintf(&b, "  %d. %s%s — %s\n", el.Position, el.Type, elementLabel(el), el.Reason)
	}
	fmt.Fprintf(&b, "\nARIA attributes added (%d):\n", len(ariaAdded))
	for _, el := range ariaAdded {
		fmt.Fprintf(&b, "  %d. %s%s → aria-label=%q role=%q\n", el.Position, el.Type, elementLabel(el), el.SuggestedAriaLabel, el.SuggestedAriaRole)
	}
	fmt.Fprintf(&b, "\nNeeds data-testid (%d):\n", len(needsID))
	for _, el := range needsID {
		fmt.Fprintf(&b, "  %d. %s%s → data-testid=%q — %s\n", el.Position, el.Type, elementLabel(el), el.SuggestedTestID, el.Reason)
	}

	renderPreview(&b, elements, AriaFirst)

	b.WriteString("\nRecommendation: apply the changes above. Each element receives either ARIA attributes or a data-testid, never both.\n")
	return b.String()
}

// elementLabel renders the short identifying text shown after an element's
// type in report lines, e.g. ` "Save"`.
func elementLabel(el model.Element) string {
	if el.Text == "" {
		return ""
	}
	return fmt.Sprintf(" %q", el.Text)
}
