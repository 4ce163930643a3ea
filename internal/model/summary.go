package model

// CountByType tallies elements per category, used in scan output headers.
func CountByType(elements []Element) map[string]int {
	if len(elements) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, el := range elements {
		counts[el.Type]++
	}
	return counts
}
