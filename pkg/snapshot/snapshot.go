// Package snapshot reads solver input files and renders solver output for offline runs.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coursestaff/assignment-solver/pkg/core/solver"
)

// Output formats accepted by WriteAssignments
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Load reads a SolverData file. The format is chosen by extension (.json, .yaml or .yml).
// The data is not validated here; solver.Solve does that.
func Load(path string) (solver.SolverData, error) {
	var data solver.SolverData

	content, err := os.ReadFile(path)
	if err != nil {
		return data, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	format, err := formatFromPath(path)
	if err != nil {
		return data, err
	}

	if err := Decode(content, format, &data); err != nil {
		return data, fmt.Errorf("failed to parse snapshot file %s: %w", filepath.Base(path), err)
	}

	return data, nil
}

// Decode unmarshals content in the given format into data
func Decode(content []byte, format string, data *solver.SolverData) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(content, data)
	case FormatYAML:
		return yaml.Unmarshal(content, data)
	default:
		return fmt.Errorf("unsupported format %q (expected %s or %s)", format, FormatJSON, FormatYAML)
	}
}

// WriteAssignments renders an outcome to w as JSON or YAML
func WriteAssignments(w io.Writer, outcome *solver.Outcome, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcome); err != nil {
			return fmt.Errorf("failed to encode outcome as json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(outcome); err != nil {
			return fmt.Errorf("failed to encode outcome as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml output: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q (expected %s or %s)", format, FormatJSON, FormatYAML)
	}
	return nil
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("cannot infer snapshot format from %q (expected .json, .yaml or .yml)", filepath.Base(path))
	}
}
