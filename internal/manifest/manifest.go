// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest writes a record of one import run next to its output.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/crm-import/pkg/types"
)

// Manifest describes a completed run.
type Manifest struct {
	RunID     string              `json:"run_id" yaml:"run_id"`
	CreatedAt time.Time           `json:"created_at" yaml:"created_at"`
	Input     string              `json:"input" yaml:"input"`
	Output    string              `json:"output" yaml:"output"`
	Encoding  types.Encoding      `json:"encoding" yaml:"encoding"`
	BoolStyle types.BoolStyle     `json:"bool_style" yaml:"bool_style"`
	Verified  bool                `json:"verified" yaml:"verified"`
	Added     []types.AddedColumn `json:"added_columns" yaml:"added_columns"`
	Summary   types.Summary       `json:"summary" yaml:"summary"`
}

// New stamps a manifest with a fresh run ID and the current UTC time.
func New() Manifest {
	return Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Write saves m to path, as JSON when the extension is .json and as YAML
// otherwise.
func Write(path string, m Manifest) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(m, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		data, err = yaml.Marshal(m)
	}
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &types.PathError{Kind: types.ErrWriteFailure, Op: "manifest", Path: path, Err: err}
	}
	return nil
}

// Read loads a manifest written by Write.
func Read(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &m)
	} else {
		err = yaml.Unmarshal(data, &m)
	}
	if err != nil {
		return m, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
