package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v82/github"

	"github.com/dessaya/mergebot/internal/domain/model"
)

// MergePullRequest merges the pull request with the given commit title and
// expected head SHA. The commit message body is left empty so the squashed
// commit carries only the title.
//
// GitHub refuses a merge with 405 (not mergeable) or 409 (head SHA moved
// since we looked). Those are expected outcomes of racing CI and new
// pushes, so they map to an unmerged MergeResult carrying GitHub's message
// instead of an error.
func (c *Client) MergePullRequest(ctx context.Context, ref model.PRRef, commitTitle, sha string, method model.MergeMethod) (*model.MergeResult, error) {
	// DontDefaultIfBlank sends the empty commit message as-is instead of
	// letting GitHub fill the squash body with the PR description.
	opts := &gh.PullRequestOptions{
		CommitTitle:        commitTitle,
		SHA:                sha,
		MergeMethod:        string(method),
		DontDefaultIfBlank: true,
	}

	result, resp, err := c.gh.PullRequests.Merge(ctx, ref.Owner, ref.Repo, ref.Number, "", opts)
	if err != nil {
		var ghErr *gh.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil {
			switch ghErr.Response.StatusCode {
			case http.StatusMethodNotAllowed, http.StatusConflict:
				return &model.MergeResult{
					Merged:  false,
					Message: ghErr.Message,
				}, nil
			}
		}
		return nil, fmt.Errorf("merging %s#%d: %w", ref.RepoFullName(), ref.Number, err)
	}

	logRateLimit(resp, ref.RepoFullName()+"/merge", 0, 1)

	return &model.MergeResult{
		Merged:  result.GetMerged(),
		SHA:     result.GetSHA(),
		Message: result.GetMessage(),
	}, nil
}
