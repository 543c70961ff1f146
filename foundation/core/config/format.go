// File: format.go
// Title: Configuration Formats and Decoding
// Description: Format detection by file extension and decoding of TOML, YAML
//              and JSON content into typed targets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// DetectFormat determines the format from the file extension, defaulting to TOML
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// Decode parses content in the given format into target
func Decode(content []byte, format Format, target interface{}) error {
	var err error

	switch format {
	case FormatTOML, FormatAuto:
		err = toml.Unmarshal(content, target)
	case FormatYAML:
		err = yaml.Unmarshal(content, target)
	case FormatJSON:
		err = json.Unmarshal(content, target)
	default:
		return hferror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(hferror.CodeInvalidConfig).
			WithOperation("config.Decode").
			WithDetail("format", format.String())
	}

	if err != nil {
		return hferror.Wrap(err, fmt.Sprintf("%s parse error", strings.ToUpper(format.String()))).
			WithCode(hferror.CodeInvalidConfig).
			WithOperation("config.Decode").
			WithDetail("format", format.String())
	}
	return nil
}

// LoadFile reads filePath and decodes it into target using the format implied
// by its extension. It returns the detected format.
func LoadFile(filePath string, target interface{}) (Format, error) {
	format := DetectFormat(filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := hferror.CodeConfigError
		if os.IsNotExist(err) {
			code = hferror.CodeMissingConfig
		}
		return format, hferror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadFile").
			WithDetail("filePath", filePath)
	}

	if err := Decode(content, format, target); err != nil {
		return format, hferror.Wrap(err, "failed to load config file").
			WithDetail("filePath", filePath)
	}

	return format, nil
}
