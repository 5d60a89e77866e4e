// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// File is the on-disk YAML representation of a catalog.
type File struct {
	Records []types.Record `yaml:"records"`
}

// LoadYAML reads a catalog file and returns a Static source over it.
func LoadYAML(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return NewStatic(f.Records)
}

// WriteYAML saves records to path in the format LoadYAML reads.
func WriteYAML(path string, records []types.Record) error {
	data, err := yaml.Marshal(&File{Records: records})
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
