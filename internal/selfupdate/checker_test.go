package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReleaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/leafiz/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://github.com/abhisek/leafiz/releases/tag/%s"}`, tag, tag)
	}))
}

func TestCheckUpdateAvailable(t *testing.T) {
	srv := newReleaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithBaseURL(srv.URL))
	res, err := c.Check(context.Background(), &CheckInput{Version: "1.1.0"})
	require.NoError(t, err)

	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v1.2.0", res.LatestVersion)
	assert.Contains(t, res.ReleaseURL, "v1.2.0")
}

func TestCheckAlreadyLatest(t *testing.T) {
	srv := newReleaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithBaseURL(srv.URL))
	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)

	assert.False(t, res.UpdateAvailable)
}

func TestCheckNewerLocalVersion(t *testing.T) {
	srv := newReleaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithBaseURL(srv.URL))
	res, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
	require.NoError(t, err)

	assert.False(t, res.UpdateAvailable)
}

func TestCheckDevBuildNeverUpdates(t *testing.T) {
	srv := newReleaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithBaseURL(srv.URL))
	res, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)

	assert.False(t, res.UpdateAvailable)
}

func TestCheckServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURL(srv.URL))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
