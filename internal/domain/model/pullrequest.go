package model

import "time"

// PullRequest represents the pull request being watched.
type PullRequest struct {
	Number          int
	RepoFullName    string
	Title           string
	Author          string
	Status          PRStatus
	IsDraft         bool
	URL             string
	Branch          string
	BaseBranch      string
	HeadSHA         string
	MergeableStatus MergeableStatus // Default MergeableUnknown.
	MergeableState  string          // Raw mergeable_state ("clean", "dirty", "blocked", ...).
	OpenedAt        time.Time
	UpdatedAt       time.Time
}

// HasConflicts reports whether GitHub flagged the branch as having merge
// conflicts. Both the tri-state mergeable field and mergeable_state are
// consulted since they can disagree briefly after a push.
func (pr PullRequest) HasConflicts() bool {
	return pr.MergeableStatus == MergeableConflicted || pr.MergeableState == MergeableStateDirty
}
