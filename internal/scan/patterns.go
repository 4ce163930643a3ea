package scan

import (
	"fmt"
	"regexp"

	"github.com/autotestid/autotestid-cli/internal/model"
)

// pattern ties an element category to the regex that captures it.
// Paired tags capture attributes in group 1 and inner content in group 2;
// void input tags capture only attributes.
type pattern struct {
	elementType string
	re          *regexp.Regexp
	hasInner    bool
}

// inputPattern builds the regex for an <input> with the given type attribute.
// The type value may be bare, single- or double-quoted.
func inputPattern(typ string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?is)<input\b([^>]*\btype\s*=\s*["']?%s["']?[^>]*?)\s*/?>`, typ))
}

// pairedPattern builds the regex for a <tag ...>...</tag> span.
// The close is non-greedy: the first closing tag ends the match.
func pairedPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?is)<%s\b([^>]*)>(.*?)</%s>`, tag, tag))
}

// patterns lists every element category the scanner recognizes. Each pattern
// is applied independently; results are merged and re-ordered by offset.
var patterns = []pattern{
	{model.TypeButton, pairedPattern("button"), true},
	{model.TypeTextInput, inputPattern("text"), false},
	{model.TypePasswordInput, inputPattern("password"), false},
	{model.TypeEmailInput, inputPattern("email"), false},
	{model.TypeCheckbox, inputPattern("checkbox"), false},
	{model.TypeRadio, inputPattern("radio"), false},
	{model.TypeSubmit, inputPattern("submit"), false},
	{model.TypeSelect, pairedPattern("select"), true},
	{model.TypeTextarea, pairedPattern("textarea"), true},
	{model.TypeLink, pairedPattern("a"), true},
}
