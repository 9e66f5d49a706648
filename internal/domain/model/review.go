package model

import "time"

// Review represents a review submitted on a pull request.
type Review struct {
	ID            int64
	ReviewerLogin string
	State         ReviewState
	SubmittedAt   time.Time
}

// Approvers returns the logins of reviewers whose latest submitted review
// is in the approved state. Order of first appearance is preserved and
// logins are deduplicated.
func Approvers(reviews []Review) []string {
	seen := make(map[string]bool, len(reviews))
	var approvers []string

	for _, r := range reviews {
		if r.State != ReviewStateApproved {
			continue
		}
		if seen[r.ReviewerLogin] {
			continue
		}
		seen[r.ReviewerLogin] = true
		approvers = append(approvers, r.ReviewerLogin)
	}

	return approvers
}
