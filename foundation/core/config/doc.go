// Package config decodes configuration files into typed structs.
//
// Package: config
// Title: Configuration File Handling
// Description: Detects the format of a configuration file from its extension,
//              decodes TOML, YAML or JSON into caller-supplied structs, finds
//              configuration files across search paths and watches a file for
//              changes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	var cfg AppConfig
//	path, err := config.FindConfigFile(config.DiscoveryOptions{
//		Paths:     []string{".", "$HOME/.config/app"},
//		Filenames: []string{"app"},
//	})
//	if err == nil {
//		_, err = config.LoadFile(path, &cfg)
//	}
//
//	// reload on change until ctx is cancelled
//	err = config.Watch(ctx, path, func() { reload() })
//
// Errors are foundation errors with the CONFIG_ERROR, MISSING_CONFIG or
// INVALID_CONFIG codes.
package config
