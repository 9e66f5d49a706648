package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dessaya/mergebot/internal/domain/model"
)

func TestNewClient_DefaultsToGitHubDotCom(t *testing.T) {
	ref := model.PRRef{Host: "github.com", Owner: "owner", Repo: "repo", Number: 1}

	c, err := NewClient("token", ref)

	require.NoError(t, err)
	assert.Equal(t, "https://api.github.com/", c.gh.BaseURL.String())
}

func TestNewClient_RoutesEnterpriseHostsThroughAPIv3(t *testing.T) {
	ref := model.PRRef{Host: "github.example.com", Owner: "owner", Repo: "repo", Number: 1}

	c, err := NewClient("token", ref)

	require.NoError(t, err)
	assert.Equal(t, "https://github.example.com/api/v3/", c.gh.BaseURL.String())
	assert.Equal(t, "https://github.example.com/api/uploads/", c.gh.UploadURL.String())
}
