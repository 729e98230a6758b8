package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"doccheck/internal/checklist"
	dErrors "doccheck/pkg/domain-errors"
)

// LoadOverlays reads a YAML overlay policy file and applies it over the
// built-in defaults. An empty path returns the defaults.
func LoadOverlays(path string) (checklist.Overlays, error) {
	if path == "" {
		return checklist.DefaultOverlays(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return checklist.Overlays{}, fmt.Errorf("read overlays file: %w", err)
	}
	patch, err := ParseOverlayPatch(data)
	if err != nil {
		return checklist.Overlays{}, fmt.Errorf("overlays file %s: %w", path, err)
	}
	overlays := checklist.DefaultOverlays().Apply(patch)
	if err := overlays.Validate(); err != nil {
		return checklist.Overlays{}, fmt.Errorf("overlays file %s: %w", path, err)
	}
	return overlays, nil
}

// ParseOverlayPatch decodes a YAML overlay document. Unknown keys are
// rejected so misspelled policy knobs do not silently fall back to defaults.
func ParseOverlayPatch(data []byte) (*checklist.OverlayPatch, error) {
	var patch checklist.OverlayPatch
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&patch); err != nil {
		if errors.Is(err, io.EOF) {
			return &patch, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid overlays document")
	}
	return &patch, nil
}
