package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dessaya/mergebot/internal/config"
	"github.com/dessaya/mergebot/internal/domain/model"
)

func baseConfig() *config.Config {
	return &config.Config{
		PollInterval: 5 * time.Minute,
		MergeMethod:  model.MergeMethodSquash,
		Notify:       true,
	}
}

func durationPtr(d time.Duration) *time.Duration { return &d }

func TestApplyFlags_OverridesConfig(t *testing.T) {
	cfg := baseConfig()
	cli := &CLI{
		Interval:    durationPtr(30 * time.Second),
		MergeMethod: "rebase",
		NoNotify:    true,
	}

	require.NoError(t, applyFlags(cfg, cli))

	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, model.MergeMethodRebase, cfg.MergeMethod)
	assert.False(t, cfg.Notify)
}

func TestApplyFlags_UnsetFlagsKeepConfig(t *testing.T) {
	cfg := baseConfig()

	require.NoError(t, applyFlags(cfg, &CLI{}))

	assert.Equal(t, 5*time.Minute, cfg.PollInterval)
	assert.Equal(t, model.MergeMethodSquash, cfg.MergeMethod)
	assert.True(t, cfg.Notify)
}

func TestApplyFlags_RejectsNonpositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		cfg := baseConfig()

		err := applyFlags(cfg, &CLI{Interval: durationPtr(interval)})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--interval must be positive")
		assert.Equal(t, 5*time.Minute, cfg.PollInterval)
	}
}
