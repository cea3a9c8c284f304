package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGitLab = "gitlab"
	ProviderGitHub = "github"
)

type Config struct {
	Release     Release `yaml:"release"`
	Docs        Docs    `yaml:"docs"`
	Output      Output  `yaml:"output"`
	LogLevel    string  `yaml:"log_level"`
	GitHubToken string  `yaml:"-"`
	GitLabToken string  `yaml:"-"`
}

// Release is the repository whose tags mark published releases.
type Release struct {
	Provider string `yaml:"provider"`
	Repo     string `yaml:"repo"`
	URL      string `yaml:"url"`
}

// Docs is the GitHub repository whose branches are published doc versions.
type Docs struct {
	Repo    string `yaml:"repo"`
	URL     string `yaml:"url"`
	PerPage int    `yaml:"per_page"`
}

type Output struct {
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

func Default() *Config {
	return &Config{
		Release: Release{
			Provider: ProviderGitLab,
			Repo:     "handsontable/handsontable-pro",
		},
		Docs: Docs{
			Repo:    "handsontable/docs-pro",
			PerPage: 100,
		},
		Output: Output{
			Format: "script",
			Dir:    "generated",
		},
		LogLevel: "info",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("release-provider"); err == nil && v != "" {
		cfg.Release.Provider = v
	}
	if v, err := flags.GetString("release-repo"); err == nil && v != "" {
		cfg.Release.Repo = v
	}
	if v, err := flags.GetString("release-url"); err == nil && v != "" {
		cfg.Release.URL = v
	}
	if v, err := flags.GetString("docs-repo"); err == nil && v != "" {
		cfg.Docs.Repo = v
	}
	if v, err := flags.GetString("github-url"); err == nil && v != "" {
		cfg.Docs.URL = v
	}
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output.Format = v
	}
	if v, err := flags.GetString("dir"); err == nil && v != "" {
		cfg.Output.Dir = v
	}
	if v, err := flags.GetString("log-level"); err == nil && v != "" {
		cfg.LogLevel = v
	}
	if v, err := flags.GetString("github-token"); err == nil && v != "" {
		cfg.GitHubToken = v
	}
	if v, err := flags.GetString("gitlab-token"); err == nil && v != "" {
		cfg.GitLabToken = v
	}
	return cfg
}

func (c *Config) Validate() error {
	switch c.Release.Provider {
	case ProviderGitLab, ProviderGitHub:
	default:
		return fmt.Errorf("unknown release provider %q: want %s or %s", c.Release.Provider, ProviderGitLab, ProviderGitHub)
	}
	if c.Release.Repo == "" {
		return fmt.Errorf("release repository is not set")
	}
	if c.Docs.Repo == "" {
		return fmt.Errorf("docs repository is not set")
	}
	if c.Docs.PerPage < 1 || c.Docs.PerPage > 100 {
		return fmt.Errorf("docs per_page must be between 1 and 100, got %d", c.Docs.PerPage)
	}
	switch c.Output.Format {
	case "script", "json", "table":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}
