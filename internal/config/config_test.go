package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `
strategy: aria-first
template-paths:
  - /etc/autotestid/workflow.md
  - ./workflow.md
log-level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Strategy != "aria-first" {
		t.Errorf("strategy: got %q, want %q", cfg.Strategy, "aria-first")
	}
	if len(cfg.TemplatePaths) != 2 || cfg.TemplatePaths[0] != "/etc/autotestid/workflow.md" {
		t.Errorf("template-paths: got %v", cfg.TemplatePaths)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log-level: got %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), FileName))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed yaml should error")
	}
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Strategy != "" || cfg.LogLevel != "" || len(cfg.TemplatePaths) != 0 {
		t.Errorf("empty file should yield zero config, got %+v", cfg)
	}
}
