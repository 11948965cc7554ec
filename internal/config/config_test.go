package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8002", cfg.Port)
	assert.Len(t, cfg.AllowedUserIDs, 12)
	assert.Contains(t, cfg.AllowedUserIDs, int64(185))
	assert.Empty(t, cfg.PendingTaskIDs)
	assert.Equal(t, 13, cfg.WeeklyGoal)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TAIGA_ALLOWED_USER_IDS", "1, 2,junk, ,3")
	t.Setenv("PENDING_TASK_IDS", "4242,4243")
	t.Setenv("WEEKLY_GOAL", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []int64{1, 2, 3}, cfg.AllowedUserIDs)
	assert.Equal(t, []int64{4242, 4243}, cfg.PendingTaskIDs)
	assert.Equal(t, 20, cfg.WeeklyGoal)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("WEEKLY_GOAL", "lots")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 13, cfg.WeeklyGoal)
}
