// Package buildquery encodes the query string handed to the documentation
// generator so pages know which version they describe.
package buildquery

import (
	"fmt"

	"github.com/google/go-querystring/query"
)

// DefaultBranch is what the "latest" pro version maps to.
const DefaultBranch = "master"

type Params struct {
	Version       string `url:"version"`
	LatestVersion string `url:"latestVersion"`
}

// ForProVersion builds the parameters for an explicitly requested version,
// which is then both the page version and the latest one.
func ForProVersion(v string) Params {
	if v == "latest" {
		v = DefaultBranch
	}
	return Params{Version: v, LatestVersion: v}
}

// Encode returns the URL-encoded form, keys sorted.
func Encode(p Params) (string, error) {
	if p.Version == "" || p.LatestVersion == "" {
		return "", fmt.Errorf("both version and latestVersion are required")
	}
	v, err := query.Values(p)
	if err != nil {
		return "", fmt.Errorf("encode build query: %w", err)
	}
	return v.Encode(), nil
}
