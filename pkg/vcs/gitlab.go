package vcs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// DefaultGitLabURL is the API root of the GitLab instance hosting releases.
const DefaultGitLabURL = "https://git.handsontable.com/api/v4"

// GitLabClient lists tags through the GitLab REST v4 API.
type GitLabClient struct {
	client *gitlab.Client
}

func NewGitLabClient(client *gitlab.Client) *GitLabClient {
	return &GitLabClient{client: client}
}

// ListTags looks the project up by path and then follows X-Next-Page through
// its tags until the server reports no further page.
func (c *GitLabClient) ListTags(ctx context.Context, repo Repo) ([]Tag, error) {
	project, resp, err := c.client.Projects.GetProject(repo.String(), nil, gitlab.WithContext(ctx))
	if err != nil {
		return nil, gitlabError(err, resp, "show project", repo)
	}

	var allTags []Tag
	opts := &gitlab.ListTagsOptions{
		ListOptions: gitlab.ListOptions{PerPage: MaxPerPage},
	}

	for {
		tags, resp, err := c.client.Tags.ListTags(project.ID, opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, gitlabError(err, resp, "list tags", repo)
		}
		for _, t := range tags {
			tag := Tag{Name: t.Name}
			if t.Commit != nil {
				tag.Commit = t.Commit.ID
			}
			allTags = append(allTags, tag)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	log.Debug().Str("repo", repo.String()).Interface("project_id", project.ID).Int("count", len(allTags)).Msg("listed gitlab tags")
	return allTags, nil
}

// gitlabError maps a 404 to ErrRepoNotFound and keeps the *gitlab.ErrorResponse
// reachable through errors.As.
func gitlabError(err error, resp *gitlab.Response, op string, repo Repo) error {
	if isGitLabNotFound(err, resp) {
		return fmt.Errorf("%s for %s: %w: %w", op, repo, ErrRepoNotFound, err)
	}
	return errors.Wrapf(err, "%s for %s", op, repo)
}

func isGitLabNotFound(err error, resp *gitlab.Response) bool {
	var errResp *gitlab.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode == http.StatusNotFound
	}
	return resp != nil && resp.Response != nil && resp.StatusCode == http.StatusNotFound
}
