// Package application contains use-case orchestration services.
package application

import (
	"fmt"
	"strings"

	"github.com/dessaya/mergebot/internal/domain/model"
)

// Snapshot is one poll's worth of fetched pull request state.
type Snapshot struct {
	PR             model.PullRequest
	Approvers      []string
	CheckRuns      []model.CheckRun
	CombinedStatus *model.CombinedStatus
}

// Action is what the service should do after evaluating a snapshot.
type Action int

const (
	// ActionWait sleeps one interval and polls again.
	ActionWait Action = iota
	// ActionMerge merges the pull request now.
	ActionMerge
	// ActionStop ends the loop without merging.
	ActionStop
)

// Decision is the outcome of evaluating a snapshot.
type Decision struct {
	Action       Action
	Reason       string               // Human-readable explanation, shown to the user.
	Fatal        bool                 // True when a Stop should exit non-zero.
	Failures     []model.CheckFailure // Failing checks to report this cycle.
	HasConflicts bool                 // Branch has merge conflicts.
	CIStatus     model.CIStatus
}

// Evaluate maps a snapshot to the next action. username is the login of
// the authenticated user; merging someone else's PR is refused.
func Evaluate(snap Snapshot, username string) Decision {
	pr := snap.PR

	if !strings.EqualFold(pr.Author, username) {
		return Decision{
			Action: ActionStop,
			Fatal:  true,
			Reason: fmt.Sprintf("you are not logged in as the PR author (%s != %s)", pr.Author, username),
		}
	}

	switch pr.Status {
	case model.PRStatusMerged:
		return Decision{Action: ActionStop, Reason: "PR is already merged"}
	case model.PRStatusClosed:
		return Decision{Action: ActionStop, Fatal: true, Reason: "PR is closed"}
	}

	ciStatus := CombinedCIStatus(snap.CheckRuns, snap.CombinedStatus)
	failures := CollectFailures(snap.CheckRuns, snap.CombinedStatus)
	hasConflicts := pr.HasConflicts()

	d := Decision{
		Action:       ActionWait,
		Failures:     failures,
		HasConflicts: hasConflicts,
		CIStatus:     ciStatus,
	}

	if pr.IsDraft {
		d.Reason = "PR is a draft"
		return d
	}

	if hasConflicts {
		d.Reason = "branch has merge conflicts"
		return d
	}

	if ciStatus == model.CIStatusFailing {
		d.Reason = "some checks were not successful"
		return d
	}

	if ciStatus == model.CIStatusPending {
		d.Reason = "checks are still running"
		return d
	}

	// CI passing or no CI configured: merge as soon as GitHub says the
	// branch is mergeable.
	if pr.MergeableStatus == model.MergeableMergeable {
		d.Action = ActionMerge
		return d
	}

	d.Reason = "PR is not mergeable yet"
	return d
}

// CombinedCIStatus aggregates check runs from the Checks API and the
// combined status from the Status API into a single CIStatus value.
// Priority: failing > pending > passing > unknown.
func CombinedCIStatus(checkRuns []model.CheckRun, combinedStatus *model.CombinedStatus) model.CIStatus {
	if len(checkRuns) == 0 && (combinedStatus == nil || len(combinedStatus.Statuses) == 0) {
		return model.CIStatusUnknown
	}

	var hasFailing, hasPending bool

	for _, cr := range checkRuns {
		if cr.Status == "completed" {
			if cr.Failed() {
				hasFailing = true
			}
		} else {
			// queued, in_progress, waiting, requested, pending
			hasPending = true
		}
	}

	if combinedStatus != nil {
		switch combinedStatus.State {
		case "failure", "error":
			hasFailing = true
		case "pending":
			// The Status API reports "pending" when zero statuses exist;
			// only treat it as pending when there is something to wait for.
			if len(combinedStatus.Statuses) > 0 {
				hasPending = true
			}
		}
	}

	if hasFailing {
		return model.CIStatusFailing
	}
	if hasPending {
		return model.CIStatusPending
	}
	return model.CIStatusPassing
}

// CollectFailures gathers every failing check run and commit status into a
// flat list for reporting, each with a details URL when one exists.
func CollectFailures(checkRuns []model.CheckRun, combinedStatus *model.CombinedStatus) []model.CheckFailure {
	var failures []model.CheckFailure

	for _, cr := range checkRuns {
		if cr.Failed() {
			failures = append(failures, model.CheckFailure{
				Name:       cr.Name,
				DetailsURL: cr.DetailsURL,
			})
		}
	}

	if combinedStatus != nil {
		for _, s := range combinedStatus.Statuses {
			if s.Failed() {
				failures = append(failures, model.CheckFailure{
					Name:       s.Context,
					DetailsURL: s.TargetURL,
				})
			}
		}
	}

	return failures
}
