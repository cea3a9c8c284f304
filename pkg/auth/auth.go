// Package auth builds the authenticated hosting clients the resolver uses.
package auth

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog/log"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/docs-version-resolver/pkg/vcs"
)

const (
	userAgent      = "docversions"
	requestTimeout = 30 * time.Second
)

// githubTokenEnvVars lists the environment variables checked for a GitHub
// token, in priority order.
var githubTokenEnvVars = []string{
	"GITHUB_TOKEN",
	"GH_TOKEN",
}

const gitlabTokenEnvVar = "GITLAB_TOKEN"

// GitHubToken returns the GitHub access token from the environment.
func GitHubToken() (string, error) {
	for _, env := range githubTokenEnvVars {
		if v := os.Getenv(env); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("no GitHub token found: set %s or %s", githubTokenEnvVars[0], githubTokenEnvVars[1])
}

// GitLabToken returns the GitLab access token from the environment.
func GitLabToken() (string, error) {
	if v := os.Getenv(gitlabTokenEnvVar); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("no GitLab token found: set %s", gitlabTokenEnvVar)
}

// NewGitHubClient returns a go-github client. An empty baseURL targets
// api.github.com; anything else is treated as a GitHub Enterprise root.
// Without a token the client is unauthenticated and heavily rate-limited.
func NewGitHubClient(baseURL, token string) (*github.Client, error) {
	client := github.NewClient(&http.Client{Timeout: requestTimeout})
	client.UserAgent = userAgent

	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("github base url %q: %w", baseURL, err)
		}
	}

	if token == "" {
		log.Warn().Msg("no GitHub token configured, using unauthenticated requests")
		return client, nil
	}
	return client.WithAuthToken(token), nil
}

// NewGitLabClient returns a GitLab client for baseURL (vcs.DefaultGitLabURL
// when empty). Retries are disabled; callers bound the call with a context.
func NewGitLabClient(baseURL, token string) (*gitlab.Client, error) {
	if baseURL == "" {
		baseURL = vcs.DefaultGitLabURL
	}
	if token == "" {
		log.Warn().Msg("no GitLab token configured, private projects will not be visible")
	}

	client, err := gitlab.NewClient(token,
		gitlab.WithBaseURL(baseURL),
		gitlab.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
		gitlab.WithoutRetries(),
	)
	if err != nil {
		return nil, fmt.Errorf("gitlab base url %q: %w", baseURL, err)
	}
	client.UserAgent = userAgent
	return client, nil
}
