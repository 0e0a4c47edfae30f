package property

import (
	"fmt"
	"time"

	feedRepo "nestora/database/repository/feed"
	propertyRepo "nestora/database/repository/property"
	"nestora/models"
	"nestora/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const browseLimit = 50

// PropertyService defines the listing management flows.
type PropertyService interface {
	// Publish creates a new listing for an agent.
	Publish(property models.Property) (*models.Property, error)
	Get(id string) (*models.Property, error)
	// Browse returns listings matching the filter, newest first.
	Browse(filter models.PropertyFilter) ([]models.Property, error)
	// UpdateStatus moves a listing through its lifecycle.
	UpdateStatus(id, status string) error
	Delete(id string) error
}

// DefaultPropertyService implements PropertyService over MongoDB.
type DefaultPropertyService struct {
	Repo propertyRepo.PropertyRepository
	Feed feedRepo.FeedRepository
}

// Publish creates a new listing for an agent.
func (s *DefaultPropertyService) Publish(property models.Property) (*models.Property, error) {
	logger := utils.GetLogger()

	if property.Title == "" || property.Address == "" || property.City == "" {
		return nil, fmt.Errorf("title, address, and city are required")
	}
	if property.AgentID == "" {
		return nil, fmt.Errorf("agent id is required")
	}
	if property.ListingType != "sale" && property.ListingType != "rent" {
		return nil, fmt.Errorf("listing type must be either sale or rent")
	}
	if property.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}

	property.ID = uuid.New().String()
	property.Status = models.PropertyAvailable

	if err := s.Repo.Create(&property); err != nil {
		logger.Error("Publish: failed to create property", zap.Error(err))
		return nil, fmt.Errorf("failed to publish listing, please try again")
	}

	post := models.FeedPost{
		ID:        uuid.New().String(),
		AgentID:   property.AgentID,
		Kind:      models.FeedListingPublished,
		Title:     fmt.Sprintf("New listing: %s", property.Title),
		Body:      fmt.Sprintf("%s, %s", property.Address, property.City),
		RefID:     property.ID,
		CreatedAt: time.Now(),
	}
	if err := s.Feed.Create(&post); err != nil {
		logger.Warn("Publish: failed to publish feed post", zap.Error(err))
	}

	return &property, nil
}

// Get retrieves a single listing.
func (s *DefaultPropertyService) Get(id string) (*models.Property, error) {
	property, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Get: failed to fetch property", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch listing, please try again")
	}
	if property == nil {
		return nil, fmt.Errorf("listing not found")
	}
	return property, nil
}

// Browse returns listings matching the filter, newest first.
func (s *DefaultPropertyService) Browse(filter models.PropertyFilter) ([]models.Property, error) {
	properties, err := s.Repo.Browse(filter, browseLimit)
	if err != nil {
		utils.GetLogger().Error("Browse: failed to query properties", zap.Error(err))
		return nil, fmt.Errorf("failed to browse listings, please try again")
	}
	return properties, nil
}

// UpdateStatus moves a listing through its lifecycle.
func (s *DefaultPropertyService) UpdateStatus(id, status string) error {
	switch status {
	case models.PropertyAvailable, models.PropertyPending, models.PropertySold, models.PropertyRented:
	default:
		return fmt.Errorf("unknown listing status %q", status)
	}

	updateDoc := bson.M{"status": status, "updated_at": time.Now()}
	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateStatus: failed to update property", zap.Error(err))
		return fmt.Errorf("failed to update listing, please try again")
	}
	return nil
}

// Delete removes a listing.
func (s *DefaultPropertyService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("Delete: failed to delete property", zap.Error(err))
		return fmt.Errorf("failed to delete listing, please try again")
	}
	return nil
}
