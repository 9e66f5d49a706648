// Package github implements the GitHubClient port using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/dessaya/mergebot/internal/domain/model"
	"github.com/dessaya/mergebot/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubClient = (*Client)(nil)

// Client implements the driven.GitHubClient port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching, so an unchanged PR
//     costs nothing against the rate limit between polls)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with PAT auth)
//
// Hosts other than github.com are treated as GitHub Enterprise and routed
// through the /api/v3 prefix.
func NewClient(token string, ref model.PRRef) (*Client, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient).WithAuthToken(token)

	if ref.IsEnterprise() {
		baseURL := fmt.Sprintf("https://%s/api/v3/", ref.Host)
		uploadURL := fmt.Sprintf("https://%s/api/uploads/", ref.Host)
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, uploadURL)
		if err != nil {
			return nil, fmt.Errorf("configuring enterprise URLs for %s: %w", ref.Host, err)
		}
	}

	return &Client{gh: client}, nil
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// FetchAuthenticatedUser returns the login of the user the access token belongs to.
func (c *Client) FetchAuthenticatedUser(ctx context.Context) (string, error) {
	user, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("fetching authenticated user: %w", err)
	}

	logRateLimit(resp, "user", 0, 1)

	return user.GetLogin(), nil
}

// FetchPullRequest retrieves the watched pull request and maps it to the
// domain model.
func (c *Client) FetchPullRequest(ctx context.Context, ref model.PRRef) (*model.PullRequest, error) {
	pr, resp, err := c.gh.PullRequests.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, fmt.Errorf("fetching %s#%d: %w", ref.RepoFullName(), ref.Number, err)
	}

	logRateLimit(resp, ref.RepoFullName()+"/pull", 0, 1)

	mapped := mapPullRequest(pr, ref.RepoFullName())
	return &mapped, nil
}

// FetchReviews retrieves all reviews for the pull request.
// It handles pagination automatically and maps go-github types to domain model types.
func (c *Client) FetchReviews(ctx context.Context, ref model.PRRef) ([]model.Review, error) {
	opts := &gh.ListOptions{PerPage: 100}
	var allReviews []model.Review

	for {
		reviews, resp, err := c.gh.PullRequests.ListReviews(ctx, ref.Owner, ref.Repo, ref.Number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing reviews for %s#%d (page %d): %w", ref.RepoFullName(), ref.Number, opts.Page, err)
		}

		logRateLimit(resp, ref.RepoFullName()+"/reviews", opts.Page, len(reviews))

		for _, r := range reviews {
			allReviews = append(allReviews, mapReview(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allReviews, nil
}

// FetchCheckRuns retrieves all check runs for the given commit SHA.
// It handles pagination automatically and maps go-github types to domain model types.
func (c *Client) FetchCheckRuns(ctx context.Context, ref model.PRRef, sha string) ([]model.CheckRun, error) {
	opts := &gh.ListCheckRunsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var allRuns []model.CheckRun

	for {
		result, resp, err := c.gh.Checks.ListCheckRunsForRef(ctx, ref.Owner, ref.Repo, sha, opts)
		if err != nil {
			return nil, fmt.Errorf("listing check runs for %s@%s (page %d): %w", ref.RepoFullName(), sha, opts.Page, err)
		}

		logRateLimit(resp, ref.RepoFullName()+"/check-runs", opts.Page, len(result.CheckRuns))

		for _, cr := range result.CheckRuns {
			allRuns = append(allRuns, mapCheckRun(cr))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRuns, nil
}

// FetchCombinedStatus returns the combined commit status for the given SHA.
// Returns nil, nil if no status checks are configured (zero statuses and empty state).
func (c *Client) FetchCombinedStatus(ctx context.Context, ref model.PRRef, sha string) (*model.CombinedStatus, error) {
	cs, resp, err := c.gh.Repositories.GetCombinedStatus(ctx, ref.Owner, ref.Repo, sha, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching combined status for %s@%s: %w", ref.RepoFullName(), sha, err)
	}

	logRateLimit(resp, ref.RepoFullName()+"/status", 0, len(cs.Statuses))

	return mapCombinedStatus(cs), nil
}

// mapPullRequest converts a go-github PullRequest to a domain model PullRequest.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
func mapPullRequest(pr *gh.PullRequest, repoFullName string) model.PullRequest {
	status := model.PRStatusOpen
	if !pr.GetMergedAt().IsZero() || pr.GetMerged() {
		status = model.PRStatusMerged
	} else if pr.GetState() == "closed" {
		status = model.PRStatusClosed
	}

	return model.PullRequest{
		Number:          pr.GetNumber(),
		RepoFullName:    repoFullName,
		Title:           pr.GetTitle(),
		Author:          pr.GetUser().GetLogin(),
		Status:          status,
		IsDraft:         pr.GetDraft(),
		URL:             pr.GetHTMLURL(),
		Branch:          pr.GetHead().GetRef(),
		BaseBranch:      pr.GetBase().GetRef(),
		HeadSHA:         pr.GetHead().GetSHA(),
		MergeableStatus: mapMergeable(pr.Mergeable),
		MergeableState:  pr.GetMergeableState(),
		OpenedAt:        pr.GetCreatedAt().Time,
		UpdatedAt:       pr.GetUpdatedAt().Time,
	}
}

// mapReview converts a go-github PullRequestReview to a domain model Review.
func mapReview(r *gh.PullRequestReview) model.Review {
	return model.Review{
		ID:            r.GetID(),
		ReviewerLogin: r.GetUser().GetLogin(),
		State:         model.ReviewState(strings.ToLower(r.GetState())),
		SubmittedAt:   r.GetSubmittedAt().Time,
	}
}

// mapCheckRun converts a go-github CheckRun to a domain model CheckRun.
func mapCheckRun(cr *gh.CheckRun) model.CheckRun {
	var startedAt, completedAt time.Time
	if cr.StartedAt != nil {
		startedAt = cr.GetStartedAt().Time
	}
	if cr.CompletedAt != nil {
		completedAt = cr.GetCompletedAt().Time
	}

	return model.CheckRun{
		ID:          cr.GetID(),
		Name:        cr.GetName(),
		Status:      cr.GetStatus(),
		Conclusion:  cr.GetConclusion(),
		DetailsURL:  cr.GetDetailsURL(),
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}
}

// mapCombinedStatus converts a go-github CombinedStatus to a domain model CombinedStatus.
// Returns nil if no statuses exist and state is empty (no CI configured).
func mapCombinedStatus(cs *gh.CombinedStatus) *model.CombinedStatus {
	if len(cs.Statuses) == 0 && cs.GetState() == "" {
		return nil
	}

	statuses := make([]model.CommitStatus, 0, len(cs.Statuses))
	for _, s := range cs.Statuses {
		statuses = append(statuses, model.CommitStatus{
			Context:     s.GetContext(),
			State:       s.GetState(),
			Description: s.GetDescription(),
			TargetURL:   s.GetTargetURL(),
		})
	}

	return &model.CombinedStatus{
		State:    cs.GetState(),
		Statuses: statuses,
	}
}

// mapMergeable converts a *bool (GitHub's tri-state mergeable field) to a MergeableStatus.
// nil means GitHub hasn't computed it yet; true means mergeable; false means conflicted.
func mapMergeable(mergeable *bool) model.MergeableStatus {
	if mergeable == nil {
		return model.MergeableUnknown
	}
	if *mergeable {
		return model.MergeableMergeable
	}
	return model.MergeableConflicted
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
