package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dessaya/mergebot/internal/domain/model"
)

func TestCommitTitle(t *testing.T) {
	tests := []struct {
		name      string
		branch    string
		approvers []string
		want      string
	}{
		{
			name:      "no approvers",
			branch:    "feature-x",
			approvers: nil,
			want:      "Merge feature-x [ok:mergebot]",
		},
		{
			name:      "one approver",
			branch:    "fix-bug",
			approvers: []string{"alice"},
			want:      "Merge fix-bug [ok:alice+mergebot]",
		},
		{
			name:      "two approvers drops the bot",
			branch:    "feature-y",
			approvers: []string{"alice", "bob"},
			want:      "Merge feature-y [ok:alice+bob]",
		},
		{
			name:      "many approvers capped at two",
			branch:    "big-change",
			approvers: []string{"alice", "bob", "carol", "dave"},
			want:      "Merge big-change [ok:alice+bob]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CommitTitle(tt.branch, tt.approvers))
		})
	}
}

func TestValidMergeMethod(t *testing.T) {
	assert.True(t, model.ValidMergeMethod("squash"))
	assert.True(t, model.ValidMergeMethod("merge"))
	assert.True(t, model.ValidMergeMethod("rebase"))
	assert.False(t, model.ValidMergeMethod("fast-forward"))
	assert.False(t, model.ValidMergeMethod(""))
}
