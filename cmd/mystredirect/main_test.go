package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mystredirect/internal/myst"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func TestRun_GeneratesRedirectsFromDiscoveredConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	config := `
project:
  toc:
    - file: overview.md
    - file: content/01-intro.md
`
	if err := os.WriteFile("myst.yml", []byte(config), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cli := CLI{
		BaseURL:   "https://example.com/",
		OutputDir: filepath.Join(dir, "out"),
	}
	if err := cli.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "overview.html"))
	if err != nil {
		t.Fatalf("index redirect missing: %v", err)
	}
	if !strings.Contains(string(data), `url=https://example.com/"`) {
		t.Fatalf("index redirect points at wrong URL:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "content", "01-intro.html")); err != nil {
		t.Fatalf("nested redirect missing: %v", err)
	}
}

func TestRun_ExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "conf", "myst.yml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("project:\n  toc:\n    - file: index.md\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cli := CLI{
		BaseURL:    "https://example.com",
		OutputDir:  filepath.Join(dir, "out"),
		MystConfig: configPath,
	}
	if err := cli.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "index.html")); err != nil {
		t.Fatalf("redirect missing: %v", err)
	}
}

func TestRun_MissingConfigReportsSearchedLocations(t *testing.T) {
	chdir(t, t.TempDir())

	cli := CLI{BaseURL: "https://example.com/", OutputDir: "out"}
	err := cli.Run()
	if !errors.Is(err, myst.ErrConfigNotFound) {
		t.Fatalf("expected config-not-found, got: %v", err)
	}
	for _, location := range myst.DefaultLocations {
		if !strings.Contains(err.Error(), location) {
			t.Fatalf("error does not name searched location %q: %v", location, err)
		}
	}
}

func TestRun_InvalidStructure(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile("myst.yml", []byte("site:\n  title: wrong shape\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cli := CLI{BaseURL: "https://example.com/", OutputDir: "out"}
	if err := cli.Run(); !errors.Is(err, myst.ErrInvalidStructure) {
		t.Fatalf("expected structure error, got: %v", err)
	}
}

func TestRun_EmptyTOCSucceedsWithZeroFiles(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile("myst.yml", []byte("project:\n  toc: []\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out := filepath.Join(dir, "out")
	cli := CLI{BaseURL: "https://example.com/", OutputDir: out}
	if err := cli.Run(); err != nil {
		t.Fatalf("empty TOC should not fail: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output directory should not be created for empty TOC")
	}
}
