// Package prompt locates the optional workflow instruction template on disk.
package prompt

import (
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultCandidates returns the ordered template locations tried when no
// explicit path is configured: next to the executable, then the working
// directory, then a prompts/ subdirectory of each.
func DefaultCandidates() []string {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, "autotestid_workflow.md"),
			filepath.Join(dir, "prompts", "autotestid_workflow.md"),
		)
	}
	candidates = append(candidates,
		"autotestid_workflow.md",
		filepath.Join("prompts", "autotestid_workflow.md"),
	)
	return candidates
}

// Loader resolves the workflow template from an ordered candidate list,
// first match wins. The zero value finds nothing; build one with NewLoader.
type Loader struct {
	candidates []string
}

// NewLoader builds a Loader that tries extra paths (highest priority) before
// the default candidates.
func NewLoader(extra ...string) *Loader {
	return &Loader{candidates: append(extra, DefaultCandidates()...)}
}

// Load returns the content of the first readable candidate. Missing files
// and read errors are not failures: they advance to the next candidate, and
// exhausting the list reports found=false.
func (l *Loader) Load() (string, bool) {
	for _, path := range l.candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("workflow template unreadable, skipping", "path", path, "err", err)
			}
			continue
		}
		slog.Debug("workflow template loaded", "path", path)
		return string(data), true
	}
	return "", false
}
