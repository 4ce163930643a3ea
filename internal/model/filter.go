package model

import "strings"

// FilterByTypes returns the elements whose category matches one of the given
// types. An empty type list passes everything through.
func FilterByTypes(elements []Element, types []string) []Element {
	if len(types) == 0 {
		return elements
	}
	want := make(map[string]bool, len(types))
	for _, t := range types {
		t = strings.TrimSpace(strings.ToLower(t))
		if t != "" {
			want[t] = true
		}
	}
	if len(want) == 0 {
		return elements
	}
	var out []Element
	for _, el := range elements {
		if want[el.Type] {
			out = append(out, el)
		}
	}
	return out
}

// FilterByText returns the elements whose text or attributes contain the
// given substring, case-insensitively.
func FilterByText(elements []Element, text string) []Element {
	if text == "" {
		return elements
	}
	needle := strings.ToLower(text)
	var out []Element
	for _, el := range elements {
		if strings.Contains(strings.ToLower(el.Text), needle) ||
			strings.Contains(strings.ToLower(el.Attrs), needle) {
			out = append(out, el)
		}
	}
	return out
}
