// Package versions parses, orders and matches the version strings used for
// release tags and published documentation branches.
package versions

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// docVersionPattern matches branch names that publish a documentation
// version, e.g. "1.2.0" or "2.0.0-beta3".
var docVersionPattern = regexp.MustCompile(`^\d{1,5}\.\d{1,5}\.\d{1,5}(-(beta|alpha)(\d+)?)?$`)

// IsDocVersion reports whether name is a documentation version branch.
func IsDocVersion(name string) bool {
	return docVersionPattern.MatchString(name)
}

// Constraint is a parsed version range.
type Constraint interface {
	// Check reports whether v satisfies the range. Unparseable versions never do.
	Check(v string) bool
}

// Comparator defines the ordering used to pick releases and sort doc versions.
type Comparator interface {
	// Valid reports whether v can be ordered at all.
	Valid(v string) bool

	// Compare returns -1, 0 or +1. Invalid versions sort below valid ones and
	// are ordered among themselves by plain string comparison.
	Compare(a, b string) int

	// Constraint parses a range expression such as "<2.0.0" or "~1.4".
	Constraint(expr string) (Constraint, error)
}

// Default orders versions by semantic-version precedence.
var Default Comparator = Semver{}

// Semver implements Comparator on top of Masterminds/semver. A pre-release
// sorts below its release, and ranges only match pre-releases when the range
// itself names one.
type Semver struct{}

func (Semver) Valid(v string) bool {
	_, err := semver.NewVersion(v)
	return err == nil
}

func (Semver) Compare(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return va.Compare(vb)
}

func (Semver) Constraint(expr string) (Constraint, error) {
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, fmt.Errorf("parse version range %q: %w", expr, err)
	}
	return semverConstraint{c: c}, nil
}

type semverConstraint struct {
	c *semver.Constraints
}

func (s semverConstraint) Check(v string) bool {
	ver, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return s.c.Check(ver)
}

// SortAscending returns a copy of names ordered oldest first. Equal versions
// keep their input order.
func SortAscending(names []string, cmp Comparator) []string {
	out := slices.Clone(names)
	sort.SliceStable(out, func(i, j int) bool {
		return cmp.Compare(out[i], out[j]) < 0
	})
	return out
}

// SortDescendingBy returns a copy of items ordered newest first by the
// version name returns for each item. Equal versions keep their input order.
func SortDescendingBy[T any](items []T, name func(T) string, cmp Comparator) []T {
	out := slices.Clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		return cmp.Compare(name(out[i]), name(out[j])) > 0
	})
	return out
}
