package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fir/pkg/fir"
)

func renderJSON(w io.Writer, result *fir.ScanResult) error {
	if result.Files == nil {
		copied := *result
		copied.Files = []fir.FileRecord{}
		result = &copied
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

func renderYAML(w io.Writer, result *fir.ScanResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
