package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoevodin/kedobot/internal/repository"
	"github.com/avoevodin/kedobot/internal/testutil"
)

func TestStatsService_Overview(t *testing.T) {
	database := testutil.NewTestDB(t)
	subs := repository.NewSQLiteSubmissionRepo(database)
	svc := NewStatsService(subs)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// One user per window, counting inward: the yearly user also counts
	// toward nothing shorter, the hourly one toward everything.
	fixtures := []struct {
		userID int64
		age    time.Duration
	}{
		{1, time.Hour},                // today
		{2, 3 * 24 * time.Hour},       // this week
		{3, 20 * 24 * time.Hour},      // this month
		{4, 80 * 24 * time.Hour},      // this quarter
		{5, 300 * 24 * time.Hour},     // this year
		{6, 2 * 365 * 24 * time.Hour}, // older than any window
	}
	for _, f := range fixtures {
		require.NoError(t, subs.Create(ctx, testutil.NewTestSubmission(f.userID, now.Add(-f.age))))
	}

	overview, err := svc.Overview(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 1, overview.Day)
	assert.Equal(t, 2, overview.Week)
	assert.Equal(t, 3, overview.Month)
	assert.Equal(t, 4, overview.Quarter)
	assert.Equal(t, 5, overview.Year)
	assert.Equal(t, 6, overview.Total)
}

func TestStatsService_RepeatUsersCountOnce(t *testing.T) {
	database := testutil.NewTestDB(t)
	subs := repository.NewSQLiteSubmissionRepo(database)
	svc := NewStatsService(subs)

	now := time.Now().UTC()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, subs.Create(ctx, testutil.NewTestSubmission(42, now.Add(-time.Duration(i)*time.Hour))))
	}

	overview, err := svc.Overview(ctx, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, overview.Day)
	assert.Equal(t, 1, overview.Total)
}

func TestStatsService_EmptyStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewStatsService(repository.NewSQLiteSubmissionRepo(database))

	overview, err := svc.Overview(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, overview.Total)
	assert.Zero(t, overview.Year)
}
