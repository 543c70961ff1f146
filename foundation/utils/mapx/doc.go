// File: doc.go
// Title: Map Utilities Documentation
// Description: Package documentation for mapx.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

// Package mapx provides generic helpers for string-keyed registries such as
// timestamp presets and named formats.
//
// Go map iteration order is random, so anything shown to a user or compared
// in a test goes through SortedKeys:
//
//	for _, name := range mapx.SortedKeys(presets) {
//		fmt.Println(name, presets[name])
//	}
//
// Merge layers maps with later ones winning, which is how shipped defaults are
// combined with values from a config file:
//
//	presets := mapx.Merge(defaults, fromFile)
package mapx
