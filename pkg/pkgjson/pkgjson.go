// Package pkgjson reads the fields of an npm package.json that drive a docs build.
package pkgjson

import (
	"encoding/json"
	"fmt"
	"os"
)

type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	// CompatibleHotVersion is the Handsontable CE release a Pro build pins.
	CompatibleHotVersion string `json:"compatibleHotVersion"`
}

func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if m.Version == "" {
		return nil, fmt.Errorf("%s has no version", path)
	}
	return &m, nil
}
