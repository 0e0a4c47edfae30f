package maintenanceRepo

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

// MaintenanceRepository defines methods for maintenance request data access.
type MaintenanceRepository interface {
	GetByID(id string) (*models.MaintenanceRequest, error)
	GetByProperty(propertyID string) ([]models.MaintenanceRequest, error)
	Create(request *models.MaintenanceRequest) error
	UpdateStatus(id, status string) error
}

// MongoMaintenanceRepo implements MaintenanceRepository using MongoDB.
type MongoMaintenanceRepo struct {
	coll *mongo.Collection
}

// NewMongoMaintenanceRepo creates a new instance of MaintenanceRepository using MongoDB.
func NewMongoMaintenanceRepo() MaintenanceRepository {
	repo := &MongoMaintenanceRepo{coll: database.Collection("maintenance_requests")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create maintenance indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMaintenanceRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "property_id", Value: 1}, {Key: "status", Value: 1}}},
	})
	return err
}

// Create inserts a new maintenance request document.
func (r *MongoMaintenanceRepo) Create(request *models.MaintenanceRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to create maintenance request: %w", err)
	}
	return nil
}

// UpdateStatus moves a maintenance request to the given status.
func (r *MongoMaintenanceRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update maintenance request with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("maintenance request with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a maintenance request by its unique ID.
func (r *MongoMaintenanceRepo) GetByID(id string) (*models.MaintenanceRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var request models.MaintenanceRequest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch maintenance request: %w", err)
	}
	return &request, nil
}

// GetByProperty returns all maintenance requests for a property, newest first.
func (r *MongoMaintenanceRepo) GetByProperty(propertyID string) ([]models.MaintenanceRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"property_id": propertyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch maintenance requests for property %s: %w", propertyID, err)
	}
	defer cursor.Close(ctx)

	var requests []models.MaintenanceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode maintenance requests: %w", err)
	}
	return requests, nil
}
