// Package strategy decides, per scanned element, whether it needs ARIA
// attributes, a data-testid, or no change, and renders the resulting report.
package strategy

import "strings"

// Strategy selects the locator policy applied to scanned elements.
type Strategy string

const (
	// Unset means no strategy has been chosen yet; the caller gets the
	// selection prompt instead of an evaluation.
	Unset Strategy = ""
	// AriaFirst prefers accessibility attributes and falls back to
	// data-testid only when ARIA cannot identify the element.
	AriaFirst Strategy = "aria-first"
	// TestAttributeFirst assigns a data-testid to every element that does
	// not already carry one.
	TestAttributeFirst Strategy = "test-attribute-first"
)

// Parse maps a caller-supplied strategy string to a Strategy. Blank input is
// a valid Unset; anything else unrecognized returns ok=false.
func Parse(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unset, true
	case string(AriaFirst):
		return AriaFirst, true
	case string(TestAttributeFirst):
		return TestAttributeFirst, true
	}
	return Unset, false
}

// Detect finds a strategy name embedded in free-form caller text, e.g. a
// user_request like "use the aria-first approach". Returns Unset when
// neither name appears.
func Detect(userRequest string) Strategy {
	lower := strings.ToLower(userRequest)
	if strings.Contains(lower, string(TestAttributeFirst)) {
		return TestAttributeFirst
	}
	if strings.Contains(lower, string(AriaFirst)) {
		return AriaFirst
	}
	return Unset
}
