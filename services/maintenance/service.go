package maintenance

import (
	"fmt"
	"time"

	feedRepo "nestora/database/repository/feed"
	maintenanceRepo "nestora/database/repository/maintenance"
	propertyRepo "nestora/database/repository/property"
	"nestora/models"
	"nestora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaintenanceService defines the maintenance request flows.
type MaintenanceService interface {
	// Report files a new maintenance request against a property.
	Report(request models.MaintenanceRequest) (*models.MaintenanceRequest, error)
	// ListByProperty returns all requests for a property, newest first.
	ListByProperty(propertyID string) ([]models.MaintenanceRequest, error)
	// UpdateStatus moves a request through its lifecycle and posts to the
	// agent's feed when it is resolved.
	UpdateStatus(id, status string) error
}

// DefaultMaintenanceService implements MaintenanceService over MongoDB.
type DefaultMaintenanceService struct {
	Repo       maintenanceRepo.MaintenanceRepository
	Properties propertyRepo.PropertyRepository
	Feed       feedRepo.FeedRepository
}

// Report files a new maintenance request against a property.
func (s *DefaultMaintenanceService) Report(request models.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	logger := utils.GetLogger()

	if request.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if request.ReporterID == "" {
		return nil, fmt.Errorf("reporter id is required")
	}

	property, err := s.Properties.GetByID(request.PropertyID)
	if err != nil {
		logger.Error("Report: failed to fetch property", zap.Error(err))
		return nil, fmt.Errorf("failed to file request, please try again")
	}
	if property == nil {
		return nil, fmt.Errorf("property not found")
	}

	request.ID = uuid.New().String()
	request.Status = models.MaintenanceOpen

	if err := s.Repo.Create(&request); err != nil {
		logger.Error("Report: failed to create maintenance request", zap.Error(err))
		return nil, fmt.Errorf("failed to file request, please try again")
	}
	return &request, nil
}

// ListByProperty returns all requests for a property, newest first.
func (s *DefaultMaintenanceService) ListByProperty(propertyID string) ([]models.MaintenanceRequest, error) {
	requests, err := s.Repo.GetByProperty(propertyID)
	if err != nil {
		utils.GetLogger().Error("ListByProperty: failed to fetch requests", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch requests, please try again")
	}
	return requests, nil
}

// UpdateStatus moves a request through its lifecycle and posts to the
// agent's feed when it is resolved.
func (s *DefaultMaintenanceService) UpdateStatus(id, status string) error {
	logger := utils.GetLogger()

	switch status {
	case models.MaintenanceOpen, models.MaintenanceInProgress, models.MaintenanceResolved:
	default:
		return fmt.Errorf("unknown request status %q", status)
	}

	request, err := s.Repo.GetByID(id)
	if err != nil {
		logger.Error("UpdateStatus: failed to fetch request", zap.Error(err))
		return fmt.Errorf("failed to update request, please try again")
	}
	if request == nil {
		return fmt.Errorf("request not found")
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		logger.Error("UpdateStatus: failed to update request", zap.Error(err))
		return fmt.Errorf("failed to update request, please try again")
	}

	if status == models.MaintenanceResolved {
		s.postResolved(request)
	}
	return nil
}

func (s *DefaultMaintenanceService) postResolved(request *models.MaintenanceRequest) {
	logger := utils.GetLogger()

	property, err := s.Properties.GetByID(request.PropertyID)
	if err != nil || property == nil {
		logger.Warn("postResolved: could not resolve property for feed post",
			zap.String("propertyID", request.PropertyID), zap.Error(err))
		return
	}

	post := models.FeedPost{
		ID:        uuid.New().String(),
		AgentID:   property.AgentID,
		Kind:      models.FeedMaintenanceResolved,
		Title:     fmt.Sprintf("Resolved: %s", request.Title),
		Body:      fmt.Sprintf("Maintenance at %s has been resolved", property.Address),
		RefID:     request.ID,
		CreatedAt: time.Now(),
	}
	if err := s.Feed.Create(&post); err != nil {
		logger.Warn("postResolved: failed to publish feed post", zap.Error(err))
	}
}
