package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/docs-version-resolver/pkg/auth"
	"github.com/docs-version-resolver/pkg/config"
	"github.com/docs-version-resolver/pkg/logging"
	"github.com/docs-version-resolver/pkg/resolver"
	"github.com/docs-version-resolver/pkg/vcs"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	cfg         *config.Config
	newResolver func(*config.Config) (*resolver.Resolver, error)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&app{newResolver: buildResolver})
}

func newRootCmdWith(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "docversions",
		Short: "Resolve release and documentation versions for a docs build",
		Long: `Looks up the latest release tag and the published documentation branches,
and renders the version selector script and generator query the docs build consumes.`,
		Version:           fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", ".docversions.yml", "Path to config file")
	pf.String("env-file", ".env", "Path to a dotenv file providing tokens")
	pf.String("log-level", "", "Log level: debug | info | warn | error")
	pf.Bool("log-pretty", false, "Human-readable log output")
	pf.String("release-provider", "", "Host of the release tags: gitlab | github")
	pf.String("release-repo", "", "Repository whose tags mark releases (owner/name)")
	pf.String("release-url", "", "API root of the release host")
	pf.String("docs-repo", "", "GitHub repository whose branches are documentation versions")
	pf.String("github-url", "", "GitHub Enterprise root URL (empty for github.com)")
	pf.String("github-token", "", "GitHub token (default $GITHUB_TOKEN or $GH_TOKEN)")
	pf.String("gitlab-token", "", "GitLab token (default $GITLAB_TOKEN)")
	pf.Duration("timeout", 0, "Give up on API calls after this long (0 disables)")

	root.AddCommand(newLatestCmd(a))
	root.AddCommand(newVersionsCmd(a))
	root.AddCommand(newQueryCmd(a))
	root.AddCommand(newCompatibleCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, loadErr := config.Load(cfgPath)
	if loadErr != nil {
		cfg = config.Default()
	}
	cfg = config.MergeFlags(cfg, cmd.Flags())

	if cfg.GitHubToken == "" {
		cfg.GitHubToken, _ = auth.GitHubToken()
	}
	if cfg.GitLabToken == "" {
		cfg.GitLabToken, _ = auth.GitLabToken()
	}

	pretty, _ := cmd.Flags().GetBool("log-pretty")
	if err := logging.Init(cfg.LogLevel, pretty, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	switch {
	case loadErr == nil:
		log.Debug().Str("path", cfgPath).Msg("loaded config")
	case errors.Is(loadErr, fs.ErrNotExist):
		log.Debug().Str("path", cfgPath).Msg("no config file, using defaults")
	default:
		log.Warn().Err(loadErr).Msg("could not load config file, using defaults")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) resolver() (*resolver.Resolver, error) {
	return a.newResolver(a.cfg)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

// buildResolver wires the hosting clients described by cfg.
func buildResolver(cfg *config.Config) (*resolver.Resolver, error) {
	releaseRepo, err := vcs.ParseRepo(cfg.Release.Repo)
	if err != nil {
		return nil, err
	}
	docsRepo, err := vcs.ParseRepo(cfg.Docs.Repo)
	if err != nil {
		return nil, err
	}

	gh, err := auth.NewGitHubClient(cfg.Docs.URL, cfg.GitHubToken)
	if err != nil {
		return nil, err
	}

	var tags vcs.TagLister
	switch cfg.Release.Provider {
	case config.ProviderGitHub:
		releaseGH, err := auth.NewGitHubClient(cfg.Release.URL, cfg.GitHubToken)
		if err != nil {
			return nil, err
		}
		tags = vcs.NewGitHubClient(releaseGH)
	default:
		gl, err := auth.NewGitLabClient(cfg.Release.URL, cfg.GitLabToken)
		if err != nil {
			return nil, err
		}
		tags = vcs.NewGitLabClient(gl)
	}

	return resolver.New(tags, vcs.NewGitHubClient(gh),
		resolver.WithReleaseRepo(releaseRepo),
		resolver.WithDocsRepo(docsRepo),
		resolver.WithBranchPageSize(cfg.Docs.PerPage),
	), nil
}
