package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a seed document. The format is picked by the file extension,
// .yaml and .yml are decoded as YAML, everything else as JSON.
func LoadFile(path string) (Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(file)
	default:
		return DecodeJSON(file)
	}
}

func DecodeJSON(r io.Reader) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode json seed: %w", err)
	}
	return snapshot, nil
}

func DecodeYAML(r io.Reader) (Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.NewDecoder(r).Decode(&snapshot); err != nil && !errors.Is(err, io.EOF) {
		return Snapshot{}, fmt.Errorf("failed to decode yaml seed: %w", err)
	}
	return snapshot, nil
}
