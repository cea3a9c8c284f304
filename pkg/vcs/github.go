package vcs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v60/github"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type GitHubClient struct {
	client *github.Client
}

func NewGitHubClient(client *github.Client) *GitHubClient {
	return &GitHubClient{client: client}
}

func (g *GitHubClient) ListTags(ctx context.Context, repo Repo) ([]Tag, error) {
	var allTags []Tag
	opts := &github.ListOptions{PerPage: MaxPerPage}

	for {
		tags, resp, err := g.client.Repositories.ListTags(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, githubError(err, "list tags", repo)
		}
		for _, t := range tags {
			allTags = append(allTags, Tag{
				Name:   t.GetName(),
				Commit: t.GetCommit().GetSHA(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	log.Debug().Str("repo", repo.String()).Int("count", len(allTags)).Msg("listed github tags")
	return allTags, nil
}

func (g *GitHubClient) ListBranches(ctx context.Context, repo Repo, perPage int) ([]Branch, error) {
	opts := &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: clampPerPage(perPage)},
	}

	branches, _, err := g.client.Repositories.ListBranches(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, githubError(err, "list branches", repo)
	}

	out := make([]Branch, 0, len(branches))
	for _, b := range branches {
		out = append(out, Branch{
			Name:   b.GetName(),
			Commit: b.GetCommit().GetSHA(),
		})
	}

	log.Debug().Str("repo", repo.String()).Int("count", len(out)).Msg("listed github branches")
	return out, nil
}

func githubError(err error, op string, repo Repo) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s for %s: %w: %w", op, repo, ErrRepoNotFound, err)
	}
	return errors.Wrapf(err, "%s for %s", op, repo)
}
