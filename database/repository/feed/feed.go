package feedRepo

import (
	"context"
	"fmt"
	"time"

	"nestora/database"
	"nestora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedRepository defines methods for timeline feed data access.
type FeedRepository interface {
	Create(post *models.FeedPost) error
	// GetByAgent returns an agent's most recent feed posts, newest first.
	GetByAgent(agentID string, limit int64) ([]models.FeedPost, error)
}

// MongoFeedRepo implements FeedRepository using MongoDB.
type MongoFeedRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedRepo creates a new instance of FeedRepository using MongoDB.
func NewMongoFeedRepo() FeedRepository {
	repo := &MongoFeedRepo{coll: database.Collection("feed_posts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create feed indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFeedRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "agent_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

// Create inserts a new feed post document.
func (r *MongoFeedRepo) Create(post *models.FeedPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create feed post: %w", err)
	}
	return nil
}

// GetByAgent returns an agent's most recent feed posts, newest first.
func (r *MongoFeedRepo) GetByAgent(agentID string, limit int64) ([]models.FeedPost, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"agent_id": agentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed for agent %s: %w", agentID, err)
	}
	defer cursor.Close(ctx)

	var posts []models.FeedPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode feed posts: %w", err)
	}
	return posts, nil
}
