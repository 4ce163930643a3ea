package scan

import (
	"regexp"
	"strings"

	"github.com/autotestid/autotestid-cli/internal/model"
)

var (
	nonTokenRe = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash  = regexp.MustCompile(`-{2,}`)
)

// SuggestTestID computes the kebab-case data-testid value for an element.
//
// The base name comes from the element text, then the name attribute, then
// the id attribute, then the element type. The result always ends with the
// category suffix token; when no base name is derivable it is the suffix
// alone, and a base derived from the element type is used as-is since it
// already names the category.
func SuggestTestID(el model.Element) string {
	base := kebab(el.Text)
	if base == "" {
		base = kebab(AttrValue(el.Attrs, "name"))
	}
	if base == "" {
		base = kebab(AttrValue(el.Attrs, "id"))
	}
	fromType := false
	if base == "" {
		base = kebab(el.Type)
		fromType = true
	}

	base = cleanToken(base)
	suffix := model.SuffixFor(el.Type)

	switch {
	case base == "":
		return suffix
	case fromType:
		return base
	case base == suffix || strings.HasSuffix(base, "-"+suffix):
		return base
	default:
		return base + "-" + suffix
	}
}

// kebab lowercases s and turns spaces and underscores into hyphens.
func kebab(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// cleanToken strips everything outside [a-z0-9-], collapses repeated
// hyphens, and trims leading/trailing hyphens.
func cleanToken(s string) string {
	s = nonTokenRe.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
