package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/talentbase/talentbase/pkg/apperror"
)

const apiBaseURL = "https://api.github.com"

// Repo is the slice of a GitHub repository the profile page renders.
type Repo struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

// Client proxies public GitHub repo listings so the browser never talks
// to GitHub directly.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: apiBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewestRepos returns up to count of the user's public repos. The
// "created:asc" sort value is not one the list endpoint accepts;
// GitHub ignores it and answers in its default order.
func (c *Client) NewestRepos(ctx context.Context, username string, count int) ([]Repo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=created:asc",
		c.baseURL, url.PathEscape(username), count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperror.NewNotFound("github user", username)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github returned status %d", resp.StatusCode)
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("failed to decode github response: %w", err)
	}
	return repos, nil
}
