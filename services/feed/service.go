package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	feedRepo "nestora/database/repository/feed"
	"nestora/models"
	"nestora/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	timelineLimit    = 30
	timelineCacheTTL = 2 * time.Minute
)

// FeedService assembles agent timelines.
type FeedService interface {
	// Timeline returns the agent's most recent feed posts, newest first.
	Timeline(agentID string) ([]models.FeedPost, error)
}

// DefaultFeedService implements FeedService with a short-lived Redis cache
// in front of MongoDB.
type DefaultFeedService struct {
	Repo  feedRepo.FeedRepository
	Cache *redis.Client
}

func timelineCacheKey(agentID string) string {
	return fmt.Sprintf("feed:%s", agentID)
}

// Timeline returns the agent's most recent feed posts, newest first.
func (s *DefaultFeedService) Timeline(agentID string) ([]models.FeedPost, error) {
	logger := utils.GetLogger()
	ctx := context.Background()
	key := timelineCacheKey(agentID)

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var posts []models.FeedPost
			if err := json.Unmarshal([]byte(cached), &posts); err == nil {
				return posts, nil
			}
			logger.Warn("Timeline: corrupt cache entry, refetching", zap.String("key", key))
		} else if err != redis.Nil {
			logger.Warn("Timeline: cache read failed", zap.Error(err))
		}
	}

	posts, err := s.Repo.GetByAgent(agentID, timelineLimit)
	if err != nil {
		logger.Error("Timeline: failed to fetch feed posts", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch timeline, please try again")
	}
	if posts == nil {
		posts = []models.FeedPost{}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(posts); err == nil {
			if err := s.Cache.Set(ctx, key, data, timelineCacheTTL).Err(); err != nil {
				logger.Warn("Timeline: cache write failed", zap.Error(err))
			}
		}
	}
	return posts, nil
}
