package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{
	"login": "octo",
	"name": "Octo Cat",
	"bio": null,
	"avatar_url": "https://avatars.example/octo.png",
	"followers": 1234,
	"public_repos": 7,
	"location": "Lisbon",
	"email": "octo@example.com",
	"twitter_username": "octocat",
	"blog": "octo.dev, linkedin.com/in/octo"
}`

const reposJSON = `[
	{
		"name": "alpha",
		"description": "First",
		"language": "Go",
		"stargazers_count": 12,
		"forks_count": 3,
		"updated_at": "2024-03-01T10:00:00Z",
		"archived": false,
		"fork": false,
		"homepage": "https://alpha.example",
		"topics": ["cli", "tools", "go"],
		"html_url": "https://github.com/octo/alpha"
	},
	{
		"name": "beta",
		"description": null,
		"language": null,
		"stargazers_count": 0,
		"forks_count": 0,
		"updated_at": "2023-01-01T00:00:00Z",
		"archived": true,
		"fork": true,
		"homepage": null,
		"html_url": "https://github.com/octo/beta"
	}
]`

func newGitHubAPI(t *testing.T, handler http.HandlerFunc) *GitHubService {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewGitHubService(server.URL, 5*time.Second)
	require.NoError(t, err)
	return svc
}

func TestFetchProfile(t *testing.T) {
	var path string
	svc := newGitHubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(userJSON))
	})

	profile, err := svc.FetchProfile(context.Background(), "octo")
	require.NoError(t, err)

	assert.Equal(t, "/users/octo", path)
	assert.Equal(t, "octo", profile.Login)
	assert.Equal(t, "Octo Cat", profile.Name)
	assert.Empty(t, profile.Bio)
	assert.Equal(t, 1234, profile.Followers)
	assert.Equal(t, 7, profile.PublicRepos)
	assert.Equal(t, "octocat", profile.TwitterUsername)
	assert.Equal(t, "octo.dev, linkedin.com/in/octo", profile.Blog)
}

func TestFetchRepositories(t *testing.T) {
	var query map[string]string
	svc := newGitHubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octo/repos", r.URL.Path)
		query = map[string]string{
			"per_page": r.URL.Query().Get("per_page"),
			"sort":     r.URL.Query().Get("sort"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reposJSON))
	})

	repos, err := svc.FetchRepositories(context.Background(), "octo")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"per_page": "100", "sort": "updated"}, query)
	require.Len(t, repos, 2)

	alpha := repos[0]
	assert.Equal(t, "alpha", alpha.Name)
	assert.Equal(t, 12, alpha.StargazersCount)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), alpha.UpdatedAt.UTC())
	assert.Equal(t, []string{"cli", "tools", "go"}, alpha.Topics)
	assert.Equal(t, "https://alpha.example", alpha.Homepage)

	beta := repos[1]
	assert.Empty(t, beta.Description)
	assert.Empty(t, beta.Language)
	assert.True(t, beta.Archived)
	assert.True(t, beta.Fork)
	assert.Empty(t, beta.Homepage)
}

func TestRemoteErrorCarriesStatus(t *testing.T) {
	testCases := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"rate limited", http.StatusForbidden},
		{"server error", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newGitHubAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(`{"message": "nope"}`))
			})

			_, err := svc.FetchProfile(context.Background(), "octo")
			var remoteErr *RemoteError
			require.True(t, errors.As(err, &remoteErr), "got %T", err)
			assert.Equal(t, tc.status, remoteErr.StatusCode)
		})
	}
}

func TestNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	svc, err := NewGitHubService(server.URL, time.Second)
	require.NoError(t, err)

	_, err = svc.FetchRepositories(context.Background(), "octo")
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr), "got %T", err)
}

func TestNewGitHubServiceRejectsBadURL(t *testing.T) {
	_, err := NewGitHubService("http://bad host/", time.Second)
	assert.Error(t, err)
}
