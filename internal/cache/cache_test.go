package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/model"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestSessionCacheRoundTrip(t *testing.T) {
	mr, client := newRedis(t)
	c := NewSessionCache(client, time.Hour)
	ctx := context.Background()

	s := model.NewQuizSession("s_1", "analyse-1")
	s.State = model.SessionInProgress
	s.Score = 2
	s.Total = 3
	s.StartedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, c.Set(ctx, s))
	assert.Equal(t, time.Hour, mr.TTL("quiz:session:s_1"))

	got, err := c.Get(ctx, "s_1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	require.NoError(t, c.Delete(ctx, "s_1"))
	got, err = c.Get(ctx, "s_1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionCacheExpiry(t *testing.T) {
	mr, client := newRedis(t)
	c := NewSessionCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, model.NewQuizSession("s_2", "q")))
	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, "s_2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatsCache(t *testing.T) {
	_, client := newRedis(t)
	c := NewStatsCache(client)
	ctx := context.Background()

	require.NoError(t, c.RecordAttempt(ctx, "q", "a", 100, true))
	require.NoError(t, c.RecordAttempt(ctx, "q", "b", 33, false))
	require.NoError(t, c.RecordAttempt(ctx, "q", "c", 67, false))

	stats, err := c.Get(ctx, "q", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Attempts)
	assert.Equal(t, int64(1), stats.Passed)
	assert.Equal(t, []model.ScoreEntry{
		{SessionID: "a", Percent: 100, Rank: 1},
		{SessionID: "c", Percent: 67, Rank: 2},
	}, stats.TopScores)
}

func TestStatsCacheEmpty(t *testing.T) {
	_, client := newRedis(t)
	stats, err := NewStatsCache(client).Get(context.Background(), "none", 5)
	require.NoError(t, err)
	assert.Zero(t, stats.Attempts)
	assert.Empty(t, stats.TopScores)
}

func TestStatsCacheKeepsBestPercentPerSession(t *testing.T) {
	_, client := newRedis(t)
	c := NewStatsCache(client)
	ctx := context.Background()

	require.NoError(t, c.RecordAttempt(ctx, "q", "a", 100, true))
	require.NoError(t, c.RecordAttempt(ctx, "q", "a", 33, false))
	require.NoError(t, c.RecordAttempt(ctx, "q", "b", 33, false))
	require.NoError(t, c.RecordAttempt(ctx, "q", "b", 67, false))

	stats, err := c.Get(ctx, "q", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Attempts)
	assert.Equal(t, []model.ScoreEntry{
		{SessionID: "a", Percent: 100, Rank: 1},
		{SessionID: "b", Percent: 67, Rank: 2},
	}, stats.TopScores)
}
