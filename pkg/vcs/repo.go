package vcs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrRepoNotFound is returned when the hosting API does not know the repository.
var ErrRepoNotFound = errors.New("repository not found")

// MaxPerPage is the largest page size the hosting APIs accept.
const MaxPerPage = 100

type Tag struct {
	Name   string
	Commit string
}

type Branch struct {
	Name   string
	Commit string
}

// Repo identifies a repository on a hosting service. For GitLab, Owner may
// contain nested groups ("group/subgroup").
type Repo struct {
	Owner string
	Name  string
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

type TagLister interface {
	// ListTags returns every tag of the repository, in the order the host
	// returns them.
	ListTags(ctx context.Context, repo Repo) ([]Tag, error)
}

type BranchLister interface {
	// ListBranches returns a single page of at most perPage branches.
	ListBranches(ctx context.Context, repo Repo, perPage int) ([]Branch, error)
}

// ParseRepo accepts "owner/name", "host/owner/name", HTTPS clone URLs and
// scp-style SSH URLs ("git@host:owner/name.git").
func ParseRepo(raw string) (Repo, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "ssh://")
	if at := strings.Index(s, "@"); at >= 0 {
		s = s[at+1:]
		s = strings.Replace(s, ":", "/", 1)
	}
	s = strings.TrimSuffix(s, "/")
	s = strings.TrimSuffix(s, ".git")

	parts := strings.Split(s, "/")
	if len(parts) >= 3 && strings.Contains(parts[0], ".") {
		parts = parts[1:]
	}
	if len(parts) < 2 {
		return Repo{}, fmt.Errorf("cannot parse repository from %q", raw)
	}
	for _, p := range parts {
		if p == "" {
			return Repo{}, fmt.Errorf("cannot parse repository from %q", raw)
		}
	}
	return Repo{
		Owner: strings.Join(parts[:len(parts)-1], "/"),
		Name:  parts[len(parts)-1],
	}, nil
}

func clampPerPage(perPage int) int {
	if perPage <= 0 || perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}
