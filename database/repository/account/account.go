package accountRepo

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

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by its email address.
	GetByEmail(email string) (*models.Account, error)
	// GetByIDWithProjection retrieves an account by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Account, error)
	// GetByEmailWithProjection retrieves an account by its email with a projection.
	GetByEmailWithProjection(email string, projection bson.M) (*models.Account, error)
	// Create inserts a new account record.
	Create(account *models.Account) error
	// Update modifies an existing account record.
	Update(account *models.Account) error
	// UpdateSetDocument applies a $set document to an account record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes an account record by its ID.
	Delete(id string) error
}

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo creates a new instance of AccountRepository using MongoDB.
func NewMongoAccountRepo() AccountRepository {
	repo := &MongoAccountRepo{coll: database.Collection("accounts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create account indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(account *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, account); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update modifies an existing account document.
func (r *MongoAccountRepo) Update(account *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	account.UpdatedAt = time.Now()
	filter := bson.M{"id": account.ID}
	update := bson.M{"$set": account}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update account with id %s: %w", account.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", account.ID)
	}
	return nil
}

// UpdateSetDocument applies a $set document to an account record.
func (r *MongoAccountRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update account with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}

// Delete removes an account document by its ID.
func (r *MongoAccountRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete account with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an account by its unique ID.
func (r *MongoAccountRepo) GetByID(id string) (*models.Account, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves an account by its email address.
func (r *MongoAccountRepo) GetByEmail(email string) (*models.Account, error) {
	return r.GetByEmailWithProjection(email, nil)
}

// GetByIDWithProjection retrieves an account by its unique ID with a projection.
func (r *MongoAccountRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Account, error) {
	return r.findOne(bson.M{"id": id}, projection)
}

// GetByEmailWithProjection retrieves an account by its email with a projection.
func (r *MongoAccountRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Account, error) {
	return r.findOne(bson.M{"email": email}, projection)
}

func (r *MongoAccountRepo) findOne(filter, projection bson.M) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if len(projection) > 0 {
		opts.SetProjection(projection)
	}

	var account models.Account
	err := r.coll.FindOne(ctx, filter, opts).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return &account, nil
}
