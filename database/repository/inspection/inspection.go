package inspectionRepo

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

// InspectionRepository defines methods for inspection data access.
type InspectionRepository interface {
	GetByID(id string) (*models.Inspection, error)
	// GetByAgent returns an agent's inspections with the given status.
	GetByAgent(agentID, status string) ([]models.Inspection, error)
	Create(inspection *models.Inspection) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}

// MongoInspectionRepo implements InspectionRepository using MongoDB.
type MongoInspectionRepo struct {
	coll *mongo.Collection
}

// NewMongoInspectionRepo creates a new instance of InspectionRepository using MongoDB.
func NewMongoInspectionRepo() InspectionRepository {
	repo := &MongoInspectionRepo{coll: database.Collection("inspections")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create inspection indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInspectionRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "agent_id", Value: 1}, {Key: "status", Value: 1}}},
	})
	return err
}

// Create inserts a new inspection document.
func (r *MongoInspectionRepo) Create(inspection *models.Inspection) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	inspection.CreatedAt = now
	inspection.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, inspection); err != nil {
		return fmt.Errorf("failed to create inspection: %w", err)
	}
	return nil
}

// UpdateStatus moves an inspection to the given status.
func (r *MongoInspectionRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update inspection with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inspection with id %s not found", id)
	}
	return nil
}

// Delete removes an inspection document by its ID.
func (r *MongoInspectionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete inspection with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("inspection with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an inspection by its unique ID.
func (r *MongoInspectionRepo) GetByID(id string) (*models.Inspection, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inspection models.Inspection
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inspection)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inspection: %w", err)
	}
	return &inspection, nil
}

// GetByAgent returns an agent's inspections with the given status.
func (r *MongoInspectionRepo) GetByAgent(agentID, status string) ([]models.Inspection, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"agent_id": agentID}
	if status != "" {
		query["status"] = status
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inspections for agent %s: %w", agentID, err)
	}
	defer cursor.Close(ctx)

	var inspections []models.Inspection
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, fmt.Errorf("failed to decode inspections: %w", err)
	}
	return inspections, nil
}
