// ============================================================================
// humanfmt - Human-readable timestamp and number formatting
// ============================================================================
//
// Package:     report
// Description: Number pairs compared in the difference table
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package report

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	fconfig "github.com/msto63/humanfmt/foundation/core/config"
	hferror "github.com/msto63/humanfmt/foundation/core/error"
)

// Pair is one comparison row: two numbers and what the row demonstrates
type Pair struct {
	X1          float64 `toml:"x1" yaml:"x1" json:"x1"`
	X2          float64 `toml:"x2" yaml:"x2" json:"x2"`
	Description string  `toml:"description" yaml:"description" json:"description"`
}

// pairFile is the document shape of a pairs file: a top-level "pairs" list
type pairFile struct {
	Pairs []Pair `toml:"pairs" yaml:"pairs" json:"pairs"`
}

// DefaultPairs returns the built-in comparison cases
func DefaultPairs() []Pair {
	return []Pair{
		{123654789963, 123654789000, "Both in Billions - small difference"},
		{5000000000, 4500000000, "Both Billions - 500M difference"},
		{1500000000, 1400000000, "Both Billions - 100M difference"},
		{100000000, 50000000, "Both Millions - 50M difference"},
		{100000, 50000, "Both Thousands - 50K difference"},
		{1234567890, 1234000000, "1.23B and 1.23B - shows 567K in B scale"},
		{999999999, 888888888, "Nearly 1B - difference in M scale"},
		{50000, 30000, "Thousands - 20K difference"},
		{500, 100, "Small numbers - below 1K"},
		{123654789963, 100, "Billion and hundreds"},
	}
}

// LoadPairs reads pairs from a TOML ([[pairs]] tables), YAML or JSON file.
// YAML files may also hold a bare list of pairs.
func LoadPairs(path string) ([]Pair, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		code := hferror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = hferror.CodeMissingConfig
		}
		return nil, hferror.Wrap(err, "failed to read pairs file").
			WithCode(code).
			WithOperation("report.LoadPairs").
			WithDetail("path", path)
	}

	var pairs []Pair
	switch fconfig.DetectFormat(path) {
	case fconfig.FormatYAML:
		pairs, err = decodeYAMLPairs(content)
	case fconfig.FormatJSON:
		var doc pairFile
		err = fconfig.Decode(content, fconfig.FormatJSON, &doc)
		pairs = doc.Pairs
	default:
		var doc pairFile
		_, err = toml.NewDecoder(bytes.NewReader(content)).Decode(&doc)
		pairs = doc.Pairs
	}
	if err != nil {
		return nil, hferror.Wrap(err, "failed to parse pairs file").
			WithCode(hferror.CodeInvalidInput).
			WithOperation("report.LoadPairs").
			WithDetail("path", path)
	}

	if len(pairs) == 0 {
		return nil, hferror.New("pairs file contains no pairs").
			WithCode(hferror.CodeInvalidInput).
			WithOperation("report.LoadPairs").
			WithDetail("path", path)
	}

	return pairs, nil
}

// decodeYAMLPairs accepts either a sequence of pairs or a mapping with a
// pairs key
func decodeYAMLPairs(content []byte) ([]Pair, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var pairs []Pair
		err := doc.Decode(&pairs)
		return pairs, err
	}

	var file pairFile
	err := doc.Decode(&file)
	return file.Pairs, err
}
