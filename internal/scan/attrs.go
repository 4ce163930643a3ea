package scan

import (
	"regexp"
	"sync"
)

// attrRes caches one value-extraction regex per attribute name.
var (
	attrMu  sync.Mutex
	attrRes = map[string]*regexp.Regexp{}
)

// AttrValue extracts the value of a named attribute from a raw attribute
// substring. Double-quoted, single-quoted, and bare values are supported.
// Returns "" when the attribute is absent.
func AttrValue(attrs, name string) string {
	attrMu.Lock()
	re, ok := attrRes[name]
	if !ok {
		re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
		attrRes[name] = re
	}
	attrMu.Unlock()

	m := re.FindStringSubmatch(attrs)
	if m == nil {
		return ""
	}
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}
