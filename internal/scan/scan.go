// Package scan finds interactive elements in raw HTML text.
//
// Matching is deliberately regex-based over the flat text: no DOM tree is
// built, so suggested-id generation and document ordering stay stable across
// malformed or fragmentary markup.
package scan

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/autotestid/autotestid-cli/internal/model"
)

// Scan extracts every interactive element from the given HTML, ordered by
// offset in the source text, with positions renumbered 1..N.
//
// Scan never fails: empty input yields nil with a warning, and any internal
// fault during matching is recovered and reported as zero elements.
func Scan(html string) (elements []model.Element) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("element scan failed", "panic", r)
			elements = nil
		}
	}()

	if strings.TrimSpace(html) == "" {
		slog.Warn("empty HTML input, nothing to scan")
		return nil
	}

	for _, p := range patterns {
		for _, idx := range p.re.FindAllStringSubmatchIndex(html, -1) {
			elements = append(elements, buildElement(p, html, idx))
		}
	}

	// Authoritative document order: first-occurrence offset in the source.
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Offset < elements[j].Offset
	})
	for i := range elements {
		elements[i].Position = i + 1
	}

	slog.Debug("scan complete", "elements", len(elements))
	return elements
}

// buildElement assembles one Element from a submatch index set.
func buildElement(p pattern, html string, idx []int) model.Element {
	full := html[idx[0]:idx[1]]
	attrs := ""
	if idx[2] >= 0 {
		attrs = strings.TrimSpace(html[idx[2]:idx[3]])
	}

	el := model.Element{
		Type:        p.elementType,
		Attrs:       attrs,
		FullElement: full,
		Offset:      idx[0],
		NeedsTestID: true,
	}

	if p.hasInner && idx[4] >= 0 {
		el.Text = firstTextRun(html[idx[4]:idx[5]])
	} else if model.InputLike(p.elementType) {
		el.Text = AttrValue(attrs, "placeholder")
		if el.Text == "" {
			el.Text = AttrValue(attrs, "value")
		}
	}

	lowerFull := strings.ToLower(full)
	lowerAttrs := strings.ToLower(attrs)
	el.HasTestID = strings.Contains(lowerFull, "data-testid")
	el.HasAriaLabel = strings.Contains(lowerAttrs, "aria-label=")
	el.HasAriaRole = strings.Contains(lowerAttrs, "role=")
	if el.HasAriaLabel {
		el.AriaLabel = AttrValue(attrs, "aria-label")
	}
	if el.HasAriaRole {
		el.AriaRole = AttrValue(attrs, "role")
	}

	el.SuggestedTestID = SuggestTestID(el)
	return el
}

// firstTextRun returns the text between the opening tag and the next child
// tag, trimmed. Content that starts with a nested tag yields "".
func firstTextRun(inner string) string {
	if i := strings.Index(inner, "<"); i >= 0 {
		inner = inner[:i]
	}
	return strings.TrimSpace(inner)
}
