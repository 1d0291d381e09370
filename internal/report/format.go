package report

import (
	"fmt"
	"strings"

	"github.com/vvka-141/fir/pkg/fir"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat converts a user-supplied format name. An empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, json or yaml): %w", s, fir.ErrInvalidConfig)
	}
}
