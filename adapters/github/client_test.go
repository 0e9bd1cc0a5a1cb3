package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbase/talentbase/pkg/apperror"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient()
	c.baseURL = srv.URL
	return c
}

func TestNewestRepos_SendsExpectedQuery(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"dotfiles","html_url":"https://github.com/anna/dotfiles","stargazers_count":3}]`))
	}))
	defer srv.Close()

	repos, err := newTestClient(srv).NewestRepos(context.Background(), "anna", 5)
	require.NoError(t, err)

	assert.Equal(t, "/users/anna/repos", gotPath)
	assert.Equal(t, "per_page=5&sort=created:asc", gotQuery)
	require.Len(t, repos, 1)
	assert.Equal(t, "dotfiles", repos[0].Name)
	assert.Equal(t, 3, repos[0].StargazersCount)
}

func TestNewestRepos_UnknownUserIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).NewestRepos(context.Background(), "nobody", 5)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
