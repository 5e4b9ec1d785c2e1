package repository

import (
	"context"
	"testing"
	"time"

	"github.com/avoevodin/kedobot/internal/domain"
	"github.com/avoevodin/kedobot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(db)
	ctx := context.Background()

	created := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	sub := testutil.NewTestSubmission(42, created)
	require.NoError(t, repo.Create(ctx, sub))

	got, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, sub.Answers, got.Answers)
	assert.Equal(t, sub.Totals, got.Totals)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestSubmissionRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissionRepo_LatestByUser_PicksNewest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	older := testutil.NewTestSubmission(7, base, testutil.WithEmployeeCount(50))
	newer := testutil.NewTestSubmission(7, base.Add(time.Hour), testutil.WithEmployeeCount(120))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.LatestByUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 120, got.Answers.EmployeeCount)
}

func TestSubmissionRepo_PruneOld_KeepsFiveMostRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var oldest string
	for i := 0; i < 6; i++ {
		sub := testutil.NewTestSubmission(9, base.Add(time.Duration(i)*time.Hour))
		if i == 0 {
			oldest = sub.ID
		}
		require.NoError(t, repo.Create(ctx, sub))
		require.NoError(t, repo.PruneOld(ctx, 9, domain.SubmissionRetention))
	}

	subs, err := repo.ListByUser(ctx, 9)
	require.NoError(t, err)
	require.Len(t, subs, 5)
	for _, s := range subs {
		assert.NotEqual(t, oldest, s.ID, "oldest submission should be evicted")
	}

	// Other users are untouched.
	other := testutil.NewTestSubmission(10, base)
	require.NoError(t, repo.Create(ctx, other))
	require.NoError(t, repo.PruneOld(ctx, 9, domain.SubmissionRetention))
	n, err := repo.CountByUser(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSubmissionRepo_CountDistinctUsers_WindowIsHalfOpen(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(db)
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission(1, day.Add(2*time.Hour))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission(1, day.Add(3*time.Hour))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission(2, day.Add(20*time.Hour))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission(3, day.AddDate(0, 0, 1))))

	n, err := repo.CountDistinctUsers(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, n, "duplicate user counted once, next-day user excluded")
}

func TestSubmissionRepo_ListUserIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission(5, now)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission(3, now)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission(5, now.Add(time.Minute))))

	ids, err := repo.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, ids)
}
