package config

import (
	"path"
	"strings"

	"github.com/jmgilman/go/persist/errors"
)

// Format identifies a configuration encoding.
type Format string

// Supported formats.
const (
	FormatYAML       Format = "yaml"
	FormatJSON       Format = "json"
	FormatCUE        Format = "cue"
	FormatProperties Format = "properties"
)

var extensions = map[string]Format{
	".yaml":       FormatYAML,
	".yml":        FormatYAML,
	".json":       FormatJSON,
	".cue":        FormatCUE,
	".properties": FormatProperties,
}

// DetectFormat returns the format implied by the extension of name.
// Unknown extensions are reported as BUILDER errors.
func DetectFormat(name string) (Format, error) {
	ext := strings.ToLower(path.Ext(name))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.WithContext(
		errors.Newf(errors.KindBuilder, "unsupported configuration format %q", ext),
		"resource", name,
	)
}
