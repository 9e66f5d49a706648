package model

// PRStatus represents the state of a pull request.
type PRStatus string

const (
	PRStatusOpen   PRStatus = "open"
	PRStatusClosed PRStatus = "closed"
	PRStatusMerged PRStatus = "merged"
)

// ReviewState represents the state of a review.
type ReviewState string

const (
	ReviewStateApproved         ReviewState = "approved"
	ReviewStateChangesRequested ReviewState = "changes_requested"
	ReviewStateCommented        ReviewState = "commented"
	ReviewStatePending          ReviewState = "pending"
	ReviewStateDismissed        ReviewState = "dismissed"
)

// CIStatus represents the aggregated state of a PR's checks.
type CIStatus string

const (
	CIStatusPassing CIStatus = "passing"
	CIStatusFailing CIStatus = "failing"
	CIStatusPending CIStatus = "pending"
	CIStatusUnknown CIStatus = "unknown"
)

// MergeableStatus represents GitHub's tri-state mergeable field.
type MergeableStatus string

const (
	MergeableUnknown    MergeableStatus = "unknown" // GitHub hasn't computed it yet.
	MergeableMergeable  MergeableStatus = "mergeable"
	MergeableConflicted MergeableStatus = "conflicted"
)

// MergeableStateDirty is the mergeable_state value GitHub reports when the
// branch has merge conflicts.
const MergeableStateDirty = "dirty"
