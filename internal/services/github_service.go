package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"

	"github.com/alimgiray/gfolio/internal/models"
)

// RemoteError reports a non-success HTTP status from the GitHub API
type RemoteError struct {
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("GitHub API error %d", e.StatusCode)
}

// NetworkError reports a request that never produced a response
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("GitHub API unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// GitHubService is a read-only, unauthenticated client for the two
// endpoints the portfolio needs.
type GitHubService struct {
	client *github.Client
}

// NewGitHubService creates a client rooted at apiURL. A zero timeout leaves
// requests bounded only by their context.
func NewGitHubService(apiURL string, timeout time.Duration) (*GitHubService, error) {
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	baseURL, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
	}

	client := github.NewClient(&http.Client{Timeout: timeout})
	client.BaseURL = baseURL

	return &GitHubService{client: client}, nil
}

// FetchProfile retrieves GET /users/{username}
func (s *GitHubService) FetchProfile(ctx context.Context, username string) (*models.Profile, error) {
	user, resp, err := s.client.Users.Get(ctx, username)
	if err != nil {
		return nil, classifyError("profile", resp, err)
	}
	return profileFromAPI(user), nil
}

// FetchRepositories retrieves the first page of up to 100 repositories,
// most recently updated first.
func (s *GitHubService) FetchRepositories(ctx context.Context, username string) ([]*models.Repository, error) {
	opt := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	repos, resp, err := s.client.Repositories.List(ctx, username, opt)
	if err != nil {
		return nil, classifyError("repositories", resp, err)
	}

	result := make([]*models.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, repositoryFromAPI(repo))
	}
	return result, nil
}

func classifyError(what string, resp *github.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return &NetworkError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{StatusCode: resp.StatusCode}
	}
	return fmt.Errorf("failed to decode %s: %w", what, err)
}

func profileFromAPI(user *github.User) *models.Profile {
	return &models.Profile{
		Login:           user.GetLogin(),
		Name:            user.GetName(),
		Bio:             user.GetBio(),
		AvatarURL:       user.GetAvatarURL(),
		Followers:       user.GetFollowers(),
		PublicRepos:     user.GetPublicRepos(),
		Location:        user.GetLocation(),
		Email:           user.GetEmail(),
		TwitterUsername: user.GetTwitterUsername(),
		Blog:            user.GetBlog(),
	}
}

func repositoryFromAPI(repo *github.Repository) *models.Repository {
	return &models.Repository{
		Name:            repo.GetName(),
		Description:     repo.GetDescription(),
		Language:        repo.GetLanguage(),
		StargazersCount: repo.GetStargazersCount(),
		ForksCount:      repo.GetForksCount(),
		UpdatedAt:       repo.GetUpdatedAt().Time,
		Archived:        repo.GetArchived(),
		Fork:            repo.GetFork(),
		Homepage:        repo.GetHomepage(),
		Topics:          repo.Topics,
		HTMLURL:         repo.GetHTMLURL(),
	}
}
