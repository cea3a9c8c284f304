package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".docversions.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ProviderGitLab, cfg.Release.Provider)
	assert.Equal(t, "handsontable/handsontable-pro", cfg.Release.Repo)
	assert.Equal(t, "handsontable/docs-pro", cfg.Docs.Repo)
	assert.Equal(t, 100, cfg.Docs.PerPage)
	assert.Equal(t, "script", cfg.Output.Format)
	assert.Equal(t, "generated", cfg.Output.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
release:
  provider: github
  repo: acme/widgets
docs:
  repo: acme/widgets-docs
  per_page: 50
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderGitHub, cfg.Release.Provider)
	assert.Equal(t, "acme/widgets", cfg.Release.Repo)
	assert.Equal(t, "acme/widgets-docs", cfg.Docs.Repo)
	assert.Equal(t, 50, cfg.Docs.PerPage)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "generated", cfg.Output.Dir, "unset keys keep their defaults")
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeFile(t, "release: [unclosed"))
	assert.Error(t, err)
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("release-provider", "", "")
	fs.String("release-repo", "", "")
	fs.String("release-url", "", "")
	fs.String("docs-repo", "", "")
	fs.String("github-url", "", "")
	fs.String("output", "", "")
	fs.String("dir", "", "")
	fs.String("log-level", "", "")
	fs.String("github-token", "", "")
	fs.String("gitlab-token", "", "")
	return fs
}

func TestMergeFlags(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{
		"--release-repo", "acme/widgets",
		"--release-url", "https://gitlab.example.com/api/v4",
		"--output", "json",
		"--dir", "public",
		"--github-token", "gh",
		"--gitlab-token", "gl",
	}))

	cfg := MergeFlags(Default(), fs)

	assert.Equal(t, "acme/widgets", cfg.Release.Repo)
	assert.Equal(t, "https://gitlab.example.com/api/v4", cfg.Release.URL)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "public", cfg.Output.Dir)
	assert.Equal(t, "gh", cfg.GitHubToken)
	assert.Equal(t, "gl", cfg.GitLabToken)
	assert.Equal(t, "handsontable/docs-pro", cfg.Docs.Repo, "unset flags leave the file value alone")
}

func TestMergeFlags_UnknownFlagsIgnored(t *testing.T) {
	fs := pflag.NewFlagSet("empty", pflag.ContinueOnError)
	cfg := MergeFlags(Default(), fs)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"provider", func(c *Config) { c.Release.Provider = "bitbucket" }},
		{"release repo", func(c *Config) { c.Release.Repo = "" }},
		{"docs repo", func(c *Config) { c.Docs.Repo = "" }},
		{"per page zero", func(c *Config) { c.Docs.PerPage = 0 }},
		{"per page too big", func(c *Config) { c.Docs.PerPage = 101 }},
		{"output", func(c *Config) { c.Output.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
