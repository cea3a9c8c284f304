package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepo(t *testing.T) {
	tests := []struct {
		in   string
		want Repo
	}{
		{"handsontable/docs-pro", Repo{"handsontable", "docs-pro"}},
		{"github.com/handsontable/docs-pro", Repo{"handsontable", "docs-pro"}},
		{"https://github.com/handsontable/handsontable.git", Repo{"handsontable", "handsontable"}},
		{"http://github.com/handsontable/handsontable/", Repo{"handsontable", "handsontable"}},
		{"git@git.handsontable.com:handsontable/handsontable-pro.git", Repo{"handsontable", "handsontable-pro"}},
		{"https://gitlab.com/group/subgroup/project", Repo{"group/subgroup", "project"}},
		{"group/subgroup/project", Repo{"group/subgroup", "project"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRepo(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRepoInvalid(t *testing.T) {
	for _, in := range []string{"", "docs-pro", "github.com/", "owner//name", "git@github.com:"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseRepo(in)
			assert.Error(t, err)
		})
	}
}

func TestRepoString(t *testing.T) {
	assert.Equal(t, "group/sub/project", Repo{Owner: "group/sub", Name: "project"}.String())
}

func TestClampPerPage(t *testing.T) {
	assert.Equal(t, 100, clampPerPage(0))
	assert.Equal(t, 100, clampPerPage(-5))
	assert.Equal(t, 100, clampPerPage(250))
	assert.Equal(t, 30, clampPerPage(30))
}
