// Package resolver decides which release is the latest and which
// documentation versions are published.
package resolver

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/docs-version-resolver/pkg/vcs"
	"github.com/docs-version-resolver/pkg/versions"
)

// ErrNoTags is returned when the release repository has no tags at all.
var ErrNoTags = errors.New("no tags found")

var (
	DefaultReleaseRepo = vcs.Repo{Owner: "handsontable", Name: "handsontable-pro"}
	DefaultDocsRepo    = vcs.Repo{Owner: "handsontable", Name: "docs-pro"}
)

// DefaultBranchPageSize is how many docs branches are requested.
const DefaultBranchPageSize = vcs.MaxPerPage

type Resolver struct {
	tags     vcs.TagLister
	branches vcs.BranchLister
	cmp      versions.Comparator

	releaseRepo vcs.Repo
	docsRepo    vcs.Repo
	perPage     int
}

type Option func(*Resolver)

func WithReleaseRepo(repo vcs.Repo) Option {
	return func(r *Resolver) { r.releaseRepo = repo }
}

func WithDocsRepo(repo vcs.Repo) Option {
	return func(r *Resolver) { r.docsRepo = repo }
}

func WithBranchPageSize(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.perPage = n
		}
	}
}

func WithComparator(cmp versions.Comparator) Option {
	return func(r *Resolver) { r.cmp = cmp }
}

func New(tags vcs.TagLister, branches vcs.BranchLister, opts ...Option) *Resolver {
	r := &Resolver{
		tags:        tags,
		branches:    branches,
		cmp:         versions.Default,
		releaseRepo: DefaultReleaseRepo,
		docsRepo:    DefaultDocsRepo,
		perPage:     DefaultBranchPageSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LatestRelease returns the highest release tag, restricted to rangeExpr when
// it is not empty. It returns ErrNoTags when the repository has no tags, and
// a nil tag without error when no tag satisfies the range.
func (r *Resolver) LatestRelease(ctx context.Context, rangeExpr string) (*vcs.Tag, error) {
	var constraint versions.Constraint
	if rangeExpr != "" {
		c, err := r.cmp.Constraint(rangeExpr)
		if err != nil {
			return nil, err
		}
		constraint = c
	}

	tags, err := r.tags.ListTags(ctx, r.releaseRepo)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve latest release of %s", r.releaseRepo)
	}
	if len(tags) == 0 {
		return nil, errors.Wrapf(ErrNoTags, "resolve latest release of %s", r.releaseRepo)
	}

	candidates := make([]vcs.Tag, 0, len(tags))
	for _, t := range tags {
		if !r.cmp.Valid(t.Name) {
			log.Debug().Str("tag", t.Name).Msg("skipping tag that is not a version")
			continue
		}
		candidates = append(candidates, t)
	}

	candidates = versions.SortDescendingBy(candidates, tagName, r.cmp)

	for i := range candidates {
		if constraint == nil || constraint.Check(candidates[i].Name) {
			latest := candidates[i]
			return &latest, nil
		}
	}

	log.Debug().Str("range", rangeExpr).Int("tags", len(tags)).Msg("no release matches")
	return nil, nil
}

func tagName(t vcs.Tag) string { return t.Name }

// DocVersions returns the published documentation versions, newest first.
// Branches that are not named like a version are ignored.
func (r *Resolver) DocVersions(ctx context.Context) ([]string, error) {
	branches, err := r.branches.ListBranches(ctx, r.docsRepo, r.perPage)
	if err != nil {
		return nil, errors.Wrapf(err, "list documentation versions of %s", r.docsRepo)
	}

	names := make([]string, 0, len(branches))
	for _, b := range branches {
		if versions.IsDocVersion(b.Name) {
			names = append(names, b.Name)
		}
	}
	log.Debug().Int("branches", len(branches)).Int("versions", len(names)).Msg("filtered documentation branches")

	names = versions.SortAscending(names, r.cmp)
	slices.Reverse(names)
	return names, nil
}
