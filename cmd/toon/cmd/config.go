package cmd

import (
	"os"

	"github.com/goccy/go-yaml"

	toon "github.com/cwbudde/go-toon"
)

// fileConfig is the shape of a --config YAML file. Any field left unset
// (zero value) does not override the codec default; command-line flags
// take precedence over both.
type fileConfig struct {
	IndentSize      int    `yaml:"indent_size"`
	Delimiter       string `yaml:"delimiter"`
	UseLengthMarker bool   `yaml:"use_length_marker"`
	Strict          *bool  `yaml:"strict"`
}

// loadConfigOptions reads path (if non-empty) as YAML and returns the
// Options overrides it describes. An empty path returns no options.
func loadConfigOptions(path string) ([]toon.Option, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	var opts []toon.Option
	if fc.IndentSize > 0 {
		opts = append(opts, toon.WithIndentSize(fc.IndentSize))
	}
	if fc.Delimiter != "" {
		delim, err := parseDelimiterName(fc.Delimiter)
		if err != nil {
			return nil, err
		}
		opts = append(opts, toon.WithDelimiter(delim))
	}
	if fc.UseLengthMarker {
		opts = append(opts, toon.WithLengthMarker(true))
	}
	if fc.Strict != nil {
		opts = append(opts, toon.WithStrict(*fc.Strict))
	}
	return opts, nil
}

func parseDelimiterName(name string) (toon.Delimiter, error) {
	switch name {
	case "comma", ",":
		return toon.CommaDelimiter, nil
	case "tab", "\t":
		return toon.TabDelimiter, nil
	case "pipe", "|":
		return toon.PipeDelimiter, nil
	default:
		return toon.CommaDelimiter, errUnknownDelimiter(name)
	}
}

type errUnknownDelimiter string

func (e errUnknownDelimiter) Error() string {
	return "unknown delimiter " + string(e) + " (use comma, tab, or pipe)"
}
