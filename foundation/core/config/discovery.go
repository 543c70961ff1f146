// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds configuration files across search paths, file names and
//              extensions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
	"strings"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
)

// DiscoveryOptions defines where FindConfigFile looks
type DiscoveryOptions struct {
	Paths      []string // Directories to search; environment variables are expanded
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
}

// withDefaults fills empty option lists
func (o DiscoveryOptions) withDefaults() DiscoveryOptions {
	if len(o.Paths) == 0 {
		o.Paths = []string{"."}
	}
	if len(o.Filenames) == 0 {
		o.Filenames = []string{"config"}
	}
	if len(o.Extensions) == 0 {
		o.Extensions = []string{".toml", ".yaml", ".yml"}
	}
	return o
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	options = options.withDefaults()

	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		dir = os.ExpandEnv(dir)
		if dir == "" {
			continue
		}
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}

	return paths
}

// FindConfigFile returns the first candidate that exists and is a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", hferror.New("no configuration file found in: "+strings.Join(candidates, ", ")).
		WithCode(hferror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}
