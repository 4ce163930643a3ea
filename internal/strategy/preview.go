package strategy

import (
	"fmt"
	"strings"

	"github.com/autotestid/autotestid-cli/internal/model"
)

// previewLimit caps the number of before/after blocks in a report. Large
// pages would otherwise dominate the response with repeated markup.
const previewLimit = 5

// renderPreview appends before/after markup blocks for the first elements in
// document order. "Before" is the matched markup verbatim; "after" inserts
// the chosen attribute(s) just before the closing > of the opening tag.
func renderPreview(b *strings.Builder, elements []model.Element, strat Strategy) {
	if len(elements) == 0 {
		return
	}

	b.WriteString("\nPreview:\n")
	shown := elements
	if len(shown) > previewLimit {
		shown = shown[:previewLimit]
	}
	for _, el := range shown {
		fmt.Fprintf(b, "\n  element %d (%s)\n", el.Position, el.Type)
		fmt.Fprintf(b, "  before: %s\n", el.FullElement)
		fmt.Fprintf(b, "  after:  %s\n", afterMarkup(el, strat))
	}
	if rest := len(elements) - previewLimit; rest > 0 {
		fmt.Fprintf(b, "\n  ...and %d more element(s) not shown.\n", rest)
	}
}

// afterMarkup renders the element as it would look with the strategy's
// chosen attributes applied. Elements needing no change render unchanged.
func afterMarkup(el model.Element, strat Strategy) string {
	switch strat {
	case TestAttributeFirst:
		if el.HasTestID {
			return el.FullElement
		}
		return insertIntoOpenTag(el.FullElement, fmt.Sprintf(` data-testid=%q`, el.SuggestedTestID))
	case AriaFirst:
		if el.SuggestedAriaLabel != "" {
			return insertIntoOpenTag(el.FullElement, fmt.Sprintf(` aria-label=%q role=%q`, el.SuggestedAriaLabel, el.SuggestedAriaRole))
		}
		if el.NeedsTestID {
			return insertIntoOpenTag(el.FullElement, fmt.Sprintf(` data-testid=%q`, el.SuggestedTestID))
		}
	}
	return el.FullElement
}

// insertIntoOpenTag places insert (which carries its own leading space)
// before the final > of the element's opening tag, keeping self-closing
// slashes in place.
func insertIntoOpenTag(full, insert string) string {
	i := strings.Index(full, ">")
	if i < 0 {
		return full
	}
	head := strings.TrimRight(full[:i], " ")
	if strings.HasSuffix(head, "/") {
		return strings.TrimRight(strings.TrimSuffix(head, "/"), " ") + insert + " />" + full[i+1:]
	}
	return head + insert + full[i:]
}
