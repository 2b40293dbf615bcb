// Package github aggregates a user's public GitHub profile, recent
// repositories, and language byte counts into a single stats view using
// the go-github library.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"

	"github.com/cormacGreaney/greanium/internal/metrics"
)

const (
	recentRepoCount   = 10
	languageRepoLimit = 10
	topLanguageCount  = 5
	summaryRepoCount  = 5

	requestTimeout  = 5 * time.Second
	languageTimeout = 3 * time.Second
)

// Stats is the aggregated per-request view. It is computed fresh on every
// call; nothing is cached between requests.
type Stats struct {
	Username     string        `json:"username"`
	ProfileURL   string        `json:"profile_url"`
	AvatarURL    string        `json:"avatar_url"`
	Bio          string        `json:"bio"`
	Stats        Totals        `json:"stats"`
	TopLanguages []string      `json:"top_languages"`
	RecentRepos  []RepoSummary `json:"recent_repos"`
}

// Totals holds the summed counters of the stats view.
type Totals struct {
	Repositories int `json:"repositories"`
	Stars        int `json:"stars"`
	Forks        int `json:"forks"`
	Followers    int `json:"followers"`
	Following    int `json:"following"`
}

// RepoSummary is one entry of the recent_repos list.
type RepoSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"`
	UpdatedAt   string `json:"updated_at"`
}

// Client fetches and aggregates GitHub stats for a fixed username.
type Client struct {
	gh       *gh.Client
	username string
}

// NewClient creates a stats client for the given username. Calls are
// unauthenticated (public data only) and bounded by a short timeout.
func NewClient(username string) *Client {
	httpClient := &http.Client{Timeout: requestTimeout}
	return &Client{
		gh:       gh.NewClient(httpClient),
		username: username,
	}
}

// NewClientWithHTTPClient creates a Client against a custom base URL.
// This constructor is intended for testing, allowing injection of an
// httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, username string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	client.BaseURL = u

	return &Client{
		gh:       client,
		username: username,
	}, nil
}

// Stats aggregates the user profile, the 10 most recently updated
// repositories, and their language byte counts. The profile fetch is
// required; the repo listing degrades to an empty set and individual
// language fetch failures only skip that repo's contribution.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	timer := time.Now()
	defer func() { metrics.GitHubStatsDuration.Observe(time.Since(timer).Seconds()) }()

	user, _, err := c.gh.Users.Get(ctx, c.username)
	if err != nil {
		metrics.GitHubAPIRequestsTotal.WithLabelValues("user", "error").Inc()
		return nil, fmt.Errorf("fetching user %s: %w", c.username, err)
	}
	metrics.GitHubAPIRequestsTotal.WithLabelValues("user", "ok").Inc()

	repos := c.listRecentRepos(ctx)

	stats := &Stats{
		Username:     c.username,
		ProfileURL:   user.GetHTMLURL(),
		AvatarURL:    user.GetAvatarURL(),
		Bio:          user.GetBio(),
		TopLanguages: []string{},
		RecentRepos:  []RepoSummary{},
		Stats: Totals{
			Repositories: user.GetPublicRepos(),
			Followers:    user.GetFollowers(),
			Following:    user.GetFollowing(),
		},
	}

	for _, repo := range repos {
		stats.Stats.Stars += repo.GetStargazersCount()
		stats.Stats.Forks += repo.GetForksCount()
	}

	stats.TopLanguages = c.topLanguages(ctx, repos)

	for i, repo := range repos {
		if i >= summaryRepoCount {
			break
		}
		stats.RecentRepos = append(stats.RecentRepos, RepoSummary{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			URL:         repo.GetHTMLURL(),
			Stars:       repo.GetStargazersCount(),
			Language:    repo.GetLanguage(),
			UpdatedAt:   repo.GetUpdatedAt().UTC().Format(time.RFC3339),
		})
	}

	return stats, nil
}

// listRecentRepos fetches the most recently updated repositories.
// Any failure degrades to an empty set instead of failing the request.
func (c *Client) listRecentRepos(ctx context.Context) []*gh.Repository {
	opts := &gh.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: gh.ListOptions{
			PerPage: recentRepoCount,
		},
	}

	repos, _, err := c.gh.Repositories.ListByUser(ctx, c.username, opts)
	if err != nil {
		metrics.GitHubAPIRequestsTotal.WithLabelValues("repos", "error").Inc()
		return nil
	}
	metrics.GitHubAPIRequestsTotal.WithLabelValues("repos", "ok").Inc()
	return repos
}

// topLanguages folds per-repo language byte counts into one mapping and
// returns the top names by descending total. A repo whose language fetch
// fails contributes nothing. Ties keep encounter order (stable sort);
// within a single repo, languages are visited alphabetically since the
// API response carries no reliable ordering.
func (c *Client) topLanguages(ctx context.Context, repos []*gh.Repository) []string {
	type langTotal struct {
		name  string
		bytes int
	}

	var order []langTotal
	index := make(map[string]int)

	for i, repo := range repos {
		if i >= languageRepoLimit {
			break
		}

		owner := repo.GetOwner().GetLogin()
		if owner == "" {
			owner = c.username
		}

		langCtx, cancel := context.WithTimeout(ctx, languageTimeout)
		languages, _, err := c.gh.Repositories.ListLanguages(langCtx, owner, repo.GetName())
		cancel()
		if err != nil {
			metrics.GitHubAPIRequestsTotal.WithLabelValues("languages", "error").Inc()
			continue
		}
		metrics.GitHubAPIRequestsTotal.WithLabelValues("languages", "ok").Inc()

		names := make([]string, 0, len(languages))
		for name := range languages {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if pos, ok := index[name]; ok {
				order[pos].bytes += languages[name]
				continue
			}
			index[name] = len(order)
			order = append(order, langTotal{name: name, bytes: languages[name]})
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].bytes > order[j].bytes
	})

	top := make([]string, 0, topLanguageCount)
	for i, lt := range order {
		if i >= topLanguageCount {
			break
		}
		top = append(top, lt.name)
	}
	return top
}
