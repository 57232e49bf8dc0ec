package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestAnalytics(t *testing.T) *Analytics {
	t.Helper()
	a, err := OpenAnalytics(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestAnalytics_EmptyStats(t *testing.T) {
	t.Parallel()
	a := openTestAnalytics(t)

	stats, err := a.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
	assert.Zero(t, stats.UniqueVisitors)
	assert.Zero(t, stats.TotalViews)
	assert.Empty(t, stats.TopProjects)
	assert.Empty(t, stats.RecentVisitors)
}

func TestAnalytics_Visitors(t *testing.T) {
	t.Parallel()
	a := openTestAnalytics(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, a.TrackVisitor(ctx, "aaaa", "ua-1", "/", now.Add(-2*time.Minute)))
	require.NoError(t, a.TrackVisitor(ctx, "aaaa", "ua-1", "/projects/x", now.Add(-time.Minute)))
	require.NoError(t, a.TrackVisitor(ctx, "bbbb", "ua-2", "/", now))
	require.NoError(t, a.TrackVisitor(ctx, "cccc", "ua-3", "/", now.AddDate(0, 0, -30)))

	stats, err := a.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)

	recent, err := a.RecentVisitors(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "bbbb", recent[0].HashedIP)
	assert.Equal(t, "/projects/x", recent[1].Path)
	assert.WithinDuration(t, now, recent[0].Timestamp, time.Second)
}

func TestAnalytics_ProjectViews(t *testing.T) {
	t.Parallel()
	a := openTestAnalytics(t)
	ctx := context.Background()
	now := time.Now()

	for range 3 {
		require.NoError(t, a.RecordProjectView(ctx, "popular", now))
	}
	require.NoError(t, a.RecordProjectView(ctx, "niche", now))

	stats, err := a.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalViews)
	require.Len(t, stats.TopProjects, 2)
	assert.Equal(t, "popular", stats.TopProjects[0].Slug)
	assert.Equal(t, int64(3), stats.TopProjects[0].Views)
	assert.Equal(t, "niche", stats.TopProjects[1].Slug)

	existed, err := a.ResetProjectViews(ctx, "popular")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = a.ResetProjectViews(ctx, "popular")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestAnalytics_CleanupOldVisitors(t *testing.T) {
	t.Parallel()
	a := openTestAnalytics(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, a.TrackVisitor(ctx, "old", "", "/", now.AddDate(-1, -1, 0)))
	require.NoError(t, a.TrackVisitor(ctx, "new", "", "/", now.AddDate(0, -11, 0)))

	removed, err := a.CleanupOldVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	recent, err := a.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].HashedIP)
}
