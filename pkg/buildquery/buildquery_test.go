package buildquery

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	got, err := Encode(Params{Version: "1.9.0", LatestVersion: "1.10.0"})
	require.NoError(t, err)
	assert.Equal(t, "latestVersion=1.10.0&version=1.9.0", got)

	parsed, err := url.ParseQuery(got)
	require.NoError(t, err)
	assert.Equal(t, "1.9.0", parsed.Get("version"))
	assert.Equal(t, "1.10.0", parsed.Get("latestVersion"))
}

func TestEncode_Escapes(t *testing.T) {
	got, err := Encode(Params{Version: "feature/x y", LatestVersion: "1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "latestVersion=1.0.0&version=feature%2Fx+y", got)
}

func TestEncode_Missing(t *testing.T) {
	_, err := Encode(Params{Version: "1.0.0"})
	assert.Error(t, err)
}

func TestForProVersion(t *testing.T) {
	assert.Equal(t, Params{Version: "master", LatestVersion: "master"}, ForProVersion("latest"))
	assert.Equal(t, Params{Version: "1.2.0", LatestVersion: "1.2.0"}, ForProVersion("1.2.0"))
}
