package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dessaya/mergebot/internal/domain/model"
)

func TestParsePRURL_Valid(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want model.PRRef
	}{
		{
			name: "github.com",
			url:  "https://github.com/owner/repo/pull/1234",
			want: model.PRRef{Host: "github.com", Owner: "owner", Repo: "repo", Number: 1234},
		},
		{
			name: "trailing slash",
			url:  "https://github.com/owner/repo/pull/7/",
			want: model.PRRef{Host: "github.com", Owner: "owner", Repo: "repo", Number: 7},
		},
		{
			name: "enterprise host",
			url:  "https://github.example.com/team/service/pull/99",
			want: model.PRRef{Host: "github.example.com", Owner: "team", Repo: "service", Number: 99},
		},
		{
			name: "repo with dots and dashes",
			url:  "https://github.com/some-org/my.repo-name/pull/1",
			want: model.PRRef{Host: "github.com", Owner: "some-org", Repo: "my.repo-name", Number: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParsePRURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePRURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"http scheme", "http://github.com/owner/repo/pull/1"},
		{"missing number", "https://github.com/owner/repo/pull/"},
		{"non-numeric number", "https://github.com/owner/repo/pull/abc"},
		{"issue URL", "https://github.com/owner/repo/issues/1"},
		{"extra path segment", "https://github.com/owner/repo/pull/1/files"},
		{"repo page", "https://github.com/owner/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.ParsePRURL(tt.url)
			require.Error(t, err)
		})
	}
}

func TestPRRef_RepoFullName(t *testing.T) {
	ref := model.PRRef{Host: "github.com", Owner: "owner", Repo: "repo", Number: 5}
	assert.Equal(t, "owner/repo", ref.RepoFullName())
}

func TestPRRef_IsEnterprise(t *testing.T) {
	assert.False(t, model.PRRef{Host: "github.com"}.IsEnterprise())
	assert.True(t, model.PRRef{Host: "github.corp.internal"}.IsEnterprise())
}

func TestPRRef_String(t *testing.T) {
	ref := model.PRRef{Host: "github.com", Owner: "owner", Repo: "repo", Number: 42}
	assert.Equal(t, "https://github.com/owner/repo/pull/42", ref.String())
}
