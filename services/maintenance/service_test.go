package maintenance

import (
	"testing"

	"nestora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubMaintenanceRepo struct {
	byID     map[string]*models.MaintenanceRequest
	statuses map[string]string
}

func newStubMaintenanceRepo() *stubMaintenanceRepo {
	return &stubMaintenanceRepo{
		byID:     make(map[string]*models.MaintenanceRequest),
		statuses: make(map[string]string),
	}
}

func (s *stubMaintenanceRepo) GetByID(id string) (*models.MaintenanceRequest, error) {
	return s.byID[id], nil
}

func (s *stubMaintenanceRepo) GetByProperty(propertyID string) ([]models.MaintenanceRequest, error) {
	var out []models.MaintenanceRequest
	for _, r := range s.byID {
		if r.PropertyID == propertyID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *stubMaintenanceRepo) Create(request *models.MaintenanceRequest) error {
	s.byID[request.ID] = request
	return nil
}

func (s *stubMaintenanceRepo) UpdateStatus(id, status string) error {
	s.statuses[id] = status
	return nil
}

type stubPropertyRepo struct {
	byID map[string]*models.Property
}

func (s *stubPropertyRepo) GetByID(id string) (*models.Property, error) { return s.byID[id], nil }
func (s *stubPropertyRepo) Browse(filter models.PropertyFilter, limit int64) ([]models.Property, error) {
	return nil, nil
}
func (s *stubPropertyRepo) Create(property *models.Property) error        { return nil }
func (s *stubPropertyRepo) Update(property *models.Property) error        { return nil }
func (s *stubPropertyRepo) UpdateSetDocument(id string, doc bson.M) error { return nil }
func (s *stubPropertyRepo) Delete(id string) error                        { return nil }

type stubFeedRepo struct {
	posts []models.FeedPost
}

func (s *stubFeedRepo) Create(post *models.FeedPost) error {
	s.posts = append(s.posts, *post)
	return nil
}

func (s *stubFeedRepo) GetByAgent(agentID string, limit int64) ([]models.FeedPost, error) {
	return s.posts, nil
}

func newTestService() (*DefaultMaintenanceService, *stubMaintenanceRepo, *stubFeedRepo) {
	repo := newStubMaintenanceRepo()
	feed := &stubFeedRepo{}
	props := &stubPropertyRepo{byID: map[string]*models.Property{
		"prop-1": {ID: "prop-1", AgentID: "agent-1", Address: "14 Elm Road"},
	}}
	return &DefaultMaintenanceService{Repo: repo, Properties: props, Feed: feed}, repo, feed
}

func TestReport_FilesOpenRequest(t *testing.T) {
	svc, repo, _ := newTestService()

	filed, err := svc.Report(models.MaintenanceRequest{
		PropertyID: "prop-1",
		ReporterID: "client-1",
		Title:      "Leaking tap",
	})
	require.NoError(t, err)
	require.NotNil(t, filed)

	assert.NotEmpty(t, filed.ID)
	assert.Equal(t, models.MaintenanceOpen, filed.Status)
	assert.Contains(t, repo.byID, filed.ID)
}

func TestReport_RejectsUnknownProperty(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Report(models.MaintenanceRequest{
		PropertyID: "missing",
		ReporterID: "client-1",
		Title:      "Leaking tap",
	})
	assert.Error(t, err)
}

func TestUpdateStatus_ResolvedPostsToFeed(t *testing.T) {
	svc, repo, feed := newTestService()
	repo.byID["req-1"] = &models.MaintenanceRequest{
		ID:         "req-1",
		PropertyID: "prop-1",
		Title:      "Leaking tap",
		Status:     models.MaintenanceInProgress,
	}

	require.NoError(t, svc.UpdateStatus("req-1", models.MaintenanceResolved))
	assert.Equal(t, models.MaintenanceResolved, repo.statuses["req-1"])

	require.Len(t, feed.posts, 1)
	assert.Equal(t, models.FeedMaintenanceResolved, feed.posts[0].Kind)
	assert.Equal(t, "agent-1", feed.posts[0].AgentID)
	assert.Equal(t, "req-1", feed.posts[0].RefID)
}

func TestUpdateStatus_NonResolvedDoesNotPost(t *testing.T) {
	svc, repo, feed := newTestService()
	repo.byID["req-1"] = &models.MaintenanceRequest{
		ID:         "req-1",
		PropertyID: "prop-1",
		Status:     models.MaintenanceOpen,
	}

	require.NoError(t, svc.UpdateStatus("req-1", models.MaintenanceInProgress))
	assert.Empty(t, feed.posts)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService()
	assert.Error(t, svc.UpdateStatus("req-1", "ignored"))
}
