package propertyRepo

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

// PropertyRepository defines methods for listing data access.
type PropertyRepository interface {
	GetByID(id string) (*models.Property, error)
	// Browse returns listings matching the filter, newest first.
	Browse(filter models.PropertyFilter, limit int64) ([]models.Property, error)
	Create(property *models.Property) error
	Update(property *models.Property) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
}

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo creates a new instance of PropertyRepository using MongoDB.
func NewMongoPropertyRepo() PropertyRepository {
	repo := &MongoPropertyRepo{coll: database.Collection("properties")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create property indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPropertyRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "agent_id", Value: 1}}},
	})
	return err
}

// Create inserts a new property document.
func (r *MongoPropertyRepo) Create(property *models.Property) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, property); err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// Update modifies an existing property document.
func (r *MongoPropertyRepo) Update(property *models.Property) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	property.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": property.ID}, bson.M{"$set": property})
	if err != nil {
		return fmt.Errorf("failed to update property with id %s: %w", property.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property with id %s not found", property.ID)
	}
	return nil
}

// UpdateSetDocument applies a $set document to a property record.
func (r *MongoPropertyRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update property with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property with id %s not found", id)
	}
	return nil
}

// Delete removes a property document by its ID.
func (r *MongoPropertyRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete property with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("property with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a property by its unique ID.
func (r *MongoPropertyRepo) GetByID(id string) (*models.Property, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var property models.Property
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch property: %w", err)
	}
	return &property, nil
}

// Browse returns listings matching the filter, newest first.
func (r *MongoPropertyRepo) Browse(filter models.PropertyFilter, limit int64) ([]models.Property, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.ListingType != "" {
		query["listing_type"] = filter.ListingType
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.AgentID != "" {
		query["agent_id"] = filter.AgentID
	}
	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to browse properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return properties, nil
}
