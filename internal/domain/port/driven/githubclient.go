// Package driven defines the driven ports implemented by outbound adapters.
package driven

import (
	"context"

	"github.com/dessaya/mergebot/internal/domain/model"
)

// GitHubClient defines the driven port for interacting with the GitHub API.
// Read methods fetch data; MergePullRequest mutates PR state.
type GitHubClient interface {
	// FetchAuthenticatedUser returns the login of the user the access
	// token belongs to.
	FetchAuthenticatedUser(ctx context.Context) (string, error)

	// FetchPullRequest retrieves the watched pull request.
	FetchPullRequest(ctx context.Context, ref model.PRRef) (*model.PullRequest, error)

	// FetchReviews retrieves all reviews for the pull request.
	FetchReviews(ctx context.Context, ref model.PRRef) ([]model.Review, error)

	// FetchCheckRuns returns all check runs for the given ref (commit SHA or branch).
	FetchCheckRuns(ctx context.Context, ref model.PRRef, sha string) ([]model.CheckRun, error)

	// FetchCombinedStatus returns the combined commit status for the given
	// ref. Returns nil, nil if no status checks are configured.
	FetchCombinedStatus(ctx context.Context, ref model.PRRef, sha string) (*model.CombinedStatus, error)

	// MergePullRequest merges the pull request with the given commit title
	// and expected head SHA. A merge GitHub refuses (e.g. not mergeable,
	// head moved) is reported as an unmerged MergeResult, not an error.
	MergePullRequest(ctx context.Context, ref model.PRRef, commitTitle, sha string, method model.MergeMethod) (*model.MergeResult, error)
}
