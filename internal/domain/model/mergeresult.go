package model

import (
	"fmt"
	"strings"
)

// MergeMethod is the GitHub merge strategy used when merging the PR.
type MergeMethod string

const (
	MergeMethodSquash MergeMethod = "squash"
	MergeMethodMerge  MergeMethod = "merge"
	MergeMethodRebase MergeMethod = "rebase"
)

// ValidMergeMethod reports whether s names a merge method GitHub accepts.
func ValidMergeMethod(s string) bool {
	switch MergeMethod(s) {
	case MergeMethodSquash, MergeMethodMerge, MergeMethodRebase:
		return true
	}
	return false
}

// MergeResult represents GitHub's response to a merge request.
type MergeResult struct {
	Merged  bool
	SHA     string // Merge commit SHA when Merged is true.
	Message string // GitHub's human-readable message, set on rejection too.
}

// maxTitleApprovers caps how many logins appear in the commit title tag.
const maxTitleApprovers = 2

// CommitTitle builds the merge commit title for a branch: the branch name
// plus an [ok:...] tag listing who signed off. The bot itself is appended
// after the human approvers and the list is capped at two entries.
func CommitTitle(branch string, approvers []string) string {
	tagged := make([]string, 0, len(approvers)+1)
	tagged = append(tagged, approvers...)
	tagged = append(tagged, "mergebot")
	if len(tagged) > maxTitleApprovers {
		tagged = tagged[:maxTitleApprovers]
	}
	return fmt.Sprintf("Merge %s [ok:%s]", branch, strings.Join(tagged, "+"))
}
