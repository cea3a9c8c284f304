package reporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ScriptCallback is the function the docs site defines to receive the list.
const ScriptCallback = "docVersions"

// ScriptPath is where the version script lives inside the generated site.
var ScriptPath = filepath.Join("scripts", "doc-versions.js")

// ScriptReporter writes the version-selector snippet consumed by the docs
// site: docVersions && docVersions(["2.0.0","1.0.0"])
type ScriptReporter struct{}

func (r *ScriptReporter) Report(w io.Writer, versions []string) error {
	content, err := RenderScript(versions)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}

func RenderScript(versions []string) ([]byte, error) {
	if versions == nil {
		versions = []string{}
	}

	var list bytes.Buffer
	enc := json.NewEncoder(&list)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(versions); err != nil {
		return nil, fmt.Errorf("encode versions: %w", err)
	}

	return []byte(fmt.Sprintf("%s && %s(%s)", ScriptCallback, ScriptCallback, bytes.TrimRight(list.Bytes(), "\n"))), nil
}

// WriteScript writes the snippet to <siteDir>/scripts/doc-versions.js and
// returns the path written.
func WriteScript(siteDir string, versions []string) (string, error) {
	content, err := RenderScript(versions)
	if err != nil {
		return "", err
	}

	path := filepath.Join(siteDir, ScriptPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
