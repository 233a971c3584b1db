// Package myst loads MyST project configuration and extracts its table of
// contents as an ordered list of content file paths.
package myst

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigNotFound indicates no myst.yml exists at the given or searched paths.
	ErrConfigNotFound = errors.New("MyST config file not found")
	// ErrInvalidStructure indicates the config parsed but lacks project.toc.
	ErrInvalidStructure = errors.New("MyST config must have 'project.toc' structure")
)

// TOCEntry is one node of the table of contents. An entry may reference a
// content file, carry nested children, or both. Declaration order is
// significant: the first file in the TOC is the site's landing page.
type TOCEntry struct {
	File     string     `yaml:"file,omitempty"`
	Children []TOCEntry `yaml:"children,omitempty"`
}

// Project mirrors the project section of myst.yml. Only the TOC is consumed.
// A nil TOC means the key was absent; an explicitly empty toc decodes to a
// non-nil empty slice and is valid.
type Project struct {
	TOC []TOCEntry `yaml:"toc"`
}

// Config is the subset of myst.yml this tool reads.
type Config struct {
	Project *Project `yaml:"project"`
}

// Load reads and parses the MyST configuration at path.
// Environment variables from a local .env file (if any) are loaded first and
// ${VAR} references in the YAML are expanded before parsing.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	// .env values feed ${VAR} references in the YAML; absence is fine.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Project == nil || cfg.Project.TOC == nil {
		return nil, ErrInvalidStructure
	}
	return &cfg, nil
}

// Flatten returns every file path referenced in the entries, in pre-order:
// an entry's own file comes before any file of its children. Duplicates are
// kept as-is.
func Flatten(entries []TOCEntry) []string {
	var files []string
	for _, entry := range entries {
		if entry.File != "" {
			files = append(files, entry.File)
		}
		files = append(files, Flatten(entry.Children)...)
	}
	return files
}

// Files returns the ordered content file paths of the loaded TOC.
func (c *Config) Files() []string {
	return Flatten(c.Project.TOC)
}
