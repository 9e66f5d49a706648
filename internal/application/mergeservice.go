package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dessaya/mergebot/internal/domain/model"
	"github.com/dessaya/mergebot/internal/domain/port/driven"
	"github.com/dessaya/mergebot/internal/ui"
)

// Fatal loop outcomes, surfaced to main for the exit code.
var (
	ErrNotAuthor     = errors.New("authenticated user is not the PR author")
	ErrPRClosed      = errors.New("pull request is closed")
	ErrMergeRejected = errors.New("merge rejected by GitHub")
)

// MergeService polls a single pull request and merges it once it is
// mergeable with passing checks.
type MergeService struct {
	ghClient    driven.GitHubClient
	notifier    driven.Notifier
	reporter    *ui.Reporter
	ref         model.PRRef
	interval    time.Duration
	mergeMethod model.MergeMethod
}

// NewMergeService creates a new MergeService with all required dependencies.
func NewMergeService(
	ghClient driven.GitHubClient,
	notifier driven.Notifier,
	reporter *ui.Reporter,
	ref model.PRRef,
	interval time.Duration,
	mergeMethod model.MergeMethod,
) *MergeService {
	return &MergeService{
		ghClient:    ghClient,
		notifier:    notifier,
		reporter:    reporter,
		ref:         ref,
		interval:    interval,
		mergeMethod: mergeMethod,
	}
}

// Run executes the polling loop. The first poll happens immediately, then
// once per interval. Run blocks until the PR is merged (nil), a fatal
// condition stops the loop (sentinel error), or the context is canceled.
// Transient fetch errors are logged and retried on the next cycle.
func (s *MergeService) Run(ctx context.Context) error {
	username, err := s.ghClient.FetchAuthenticatedUser(ctx)
	if err != nil {
		return fmt.Errorf("verifying credentials: %w", err)
	}
	s.reporter.Info("Logged in as %s", username)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		done, err := s.poll(ctx, username)
		if done {
			return err
		}
		if err != nil {
			slog.Error("poll cycle failed", "pr", s.ref.String(), "error", err)
			s.reporter.Warn("Poll failed (%v), retrying in %s", err, s.interval)
		}

		select {
		case <-ctx.Done():
			slog.Info("merge service stopped")
			return ctx.Err()
		case <-ticker.C:
		}
		s.reporter.Blank()
	}
}

// poll runs one fetch/report/decide/act cycle. done is true when the loop
// should end, with err carrying the outcome (nil on successful merge).
func (s *MergeService) poll(ctx context.Context, username string) (done bool, err error) {
	start := time.Now()
	s.reporter.Info("Getting PR info...")

	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return false, err
	}

	slog.Debug("snapshot fetched",
		"pr", s.ref.String(),
		"check_runs", len(snap.CheckRuns),
		"approvers", len(snap.Approvers),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	s.report(*snap)
	decision := Evaluate(*snap, username)
	return s.act(ctx, *snap, decision)
}

// fetchSnapshot fetches the PR and its surrounding state. The PR fetch is
// mandatory; reviews, check runs, and statuses degrade gracefully since a
// failed side fetch should not stall the whole cycle.
func (s *MergeService) fetchSnapshot(ctx context.Context) (*Snapshot, error) {
	pr, err := s.ghClient.FetchPullRequest(ctx, s.ref)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{PR: *pr}

	reviews, err := s.ghClient.FetchReviews(ctx, s.ref)
	if err != nil {
		slog.Error("fetch reviews failed", "pr", s.ref.String(), "error", err)
	} else {
		snap.Approvers = model.Approvers(reviews)
	}

	checkRuns, err := s.ghClient.FetchCheckRuns(ctx, s.ref, pr.HeadSHA)
	if err != nil {
		slog.Error("fetch check runs failed", "pr", s.ref.String(), "error", err)
	} else {
		snap.CheckRuns = checkRuns
	}

	combined, err := s.ghClient.FetchCombinedStatus(ctx, s.ref, pr.HeadSHA)
	if err != nil {
		slog.Error("fetch combined status failed", "pr", s.ref.String(), "error", err)
	} else {
		snap.CombinedStatus = combined
	}

	return &snap, nil
}

// report prints the per-cycle PR summary.
func (s *MergeService) report(snap Snapshot) {
	pr := snap.PR
	s.reporter.Field("author", pr.Author)
	s.reporter.Field("branch", pr.Branch)
	s.reporter.Field("state", pr.Status)
	s.reporter.Field("mergeable", pr.MergeableStatus)
	s.reporter.Field("mergeable_state", pr.MergeableState)
	s.reporter.Field("approvers", strings.Join(snap.Approvers, ", "))
}

// act carries out the evaluated decision.
func (s *MergeService) act(ctx context.Context, snap Snapshot, d Decision) (done bool, err error) {
	if len(d.Failures) > 0 {
		s.reporter.Warn("Some checks were not successful")
		for _, f := range d.Failures {
			s.reporter.Warn("    %s (%s)", f.Name, f.DetailsURL)
		}
		s.notify("Some checks were not successful")
	}

	if d.HasConflicts {
		s.reporter.Error("You have merge conflicts!")
		s.notify("You have merge conflicts!")
	}

	switch d.Action {
	case ActionStop:
		if d.Fatal {
			s.reporter.Error("%s. Mergebot out.", capitalize(d.Reason))
			s.notify(capitalize(d.Reason))
			return true, s.stopError(snap, d)
		}
		s.reporter.Ok("%s. Have a nice day!", capitalize(d.Reason))
		return true, nil

	case ActionMerge:
		return true, s.merge(ctx, snap)

	default:
		reason := d.Reason
		if reason == "" {
			reason = "PR is not mergeable yet"
		}
		slog.Info("waiting", "pr", s.ref.String(), "reason", reason, "ci_status", string(d.CIStatus))
		s.reporter.Info("%s. Will check again in %s.", capitalize(reason), s.interval)
		return false, nil
	}
}

// merge performs the merge call and reports the result.
func (s *MergeService) merge(ctx context.Context, snap Snapshot) error {
	title := model.CommitTitle(snap.PR.Branch, snap.Approvers)
	s.reporter.Info("Merge commit title will be: %s", title)
	s.reporter.Ok("PR is mergeable!")
	s.reporter.Info("Merging now...")

	result, err := s.ghClient.MergePullRequest(ctx, s.ref, title, snap.PR.HeadSHA, s.mergeMethod)
	if err != nil {
		return err
	}

	if !result.Merged {
		s.reporter.Error("Could not merge PR")
		if result.Message != "" {
			s.reporter.Error("    %s", result.Message)
		}
		s.notify("Could not merge PR")
		return fmt.Errorf("%w: %s", ErrMergeRejected, result.Message)
	}

	slog.Info("pull request merged", "pr", s.ref.String(), "sha", result.SHA)
	s.reporter.Ok("PR has been merged. Have a nice day!")
	s.notify("PR has been merged. Have a nice day!")
	return nil
}

// stopError maps a fatal stop decision to its sentinel error.
func (s *MergeService) stopError(snap Snapshot, d Decision) error {
	if snap.PR.Status == model.PRStatusClosed {
		return ErrPRClosed
	}
	return fmt.Errorf("%w: %s", ErrNotAuthor, d.Reason)
}

// notify sends a best-effort desktop notification.
func (s *MergeService) notify(message string) {
	if err := s.notifier.Notify("Mergebot", message); err != nil {
		slog.Debug("notification failed", "error", err)
	}
}

// capitalize upper-cases the first byte of a reason for standalone display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
