package myst

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLocations are probed in order when no explicit config path is given.
var DefaultLocations = []string{
	"myst.yml",
	filepath.Join("docs", "myst.yml"),
}

// Discover returns the first default location at which a myst.yml exists,
// relative to the current working directory.
func Discover() (string, error) {
	for _, location := range DefaultLocations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", fmt.Errorf("%w in common locations (%s); use --myst-config to specify the path explicitly",
		ErrConfigNotFound, strings.Join(DefaultLocations, ", "))
}
