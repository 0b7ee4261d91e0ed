package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"studyhub/internal/model"
)

// StatsCache keeps per-quiz attempt counters and a percent ranking
type StatsCache interface {
	RecordAttempt(ctx context.Context, slug, sessionID string, percent int, passed bool) error
	Get(ctx context.Context, slug string, top int) (*model.QuizStats, error)
}

type statsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
	}
}

func (c *statsCache) countersKey(slug string) string {
	return fmt.Sprintf("quiz:%s:stats", slug)
}

func (c *statsCache) scoresKey(slug string) string {
	return fmt.Sprintf("quiz:%s:scores", slug)
}

func (c *statsCache) RecordAttempt(ctx context.Context, slug, sessionID string, percent int, passed bool) error {
	pipe := c.client.TxPipeline()
	pipe.HIncrBy(ctx, c.countersKey(slug), "attempts", 1)
	if passed {
		pipe.HIncrBy(ctx, c.countersKey(slug), "passed", 1)
	}
	// a restarted session keeps its best percent
	pipe.ZAddArgs(ctx, c.scoresKey(slug), redis.ZAddArgs{
		GT: true,
		Members: []redis.Z{{
			Score:  float64(percent),
			Member: sessionID,
		}},
	})
	_, err := pipe.Exec(ctx)
	return err
}

func (c *statsCache) Get(ctx context.Context, slug string, top int) (*model.QuizStats, error) {
	counters, err := c.client.HGetAll(ctx, c.countersKey(slug)).Result()
	if err != nil {
		return nil, err
	}

	stats := &model.QuizStats{QuizSlug: slug, TopScores: []model.ScoreEntry{}}
	stats.Attempts, _ = strconv.ParseInt(counters["attempts"], 10, 64)
	stats.Passed, _ = strconv.ParseInt(counters["passed"], 10, 64)

	if top <= 0 {
		return stats, nil
	}

	results, err := c.client.ZRevRangeWithScores(ctx, c.scoresKey(slug), 0, int64(top-1)).Result()
	if err != nil {
		return nil, err
	}
	for i, z := range results {
		stats.TopScores = append(stats.TopScores, model.ScoreEntry{
			SessionID: z.Member.(string),
			Percent:   int(z.Score),
			Rank:      i + 1,
		})
	}
	return stats, nil
}
