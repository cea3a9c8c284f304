package pkgjson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `{
  "name": "handsontable-pro",
  "version": "1.9.0",
  "compatibleHotVersion": "0.30.0",
  "dependencies": {"moment": "2.17.1"}
}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Manifest{Name: "handsontable-pro", Version: "1.9.0", CompatibleHotVersion: "0.30.0"}, m)
}

func TestLoad_NoVersion(t *testing.T) {
	_, err := Load(write(t, `{"name": "x"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no version")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(write(t, `{`))
	assert.Error(t, err)
}
