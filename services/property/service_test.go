package property

import (
	"testing"

	"nestora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubPropertyRepo struct {
	byID    map[string]*models.Property
	created []models.Property
	updated map[string]bson.M
	deleted []string
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{
		byID:    make(map[string]*models.Property),
		updated: make(map[string]bson.M),
	}
}

func (s *stubPropertyRepo) GetByID(id string) (*models.Property, error) {
	return s.byID[id], nil
}

func (s *stubPropertyRepo) Browse(filter models.PropertyFilter, limit int64) ([]models.Property, error) {
	var out []models.Property
	for _, p := range s.byID {
		if filter.City != "" && p.City != filter.City {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPropertyRepo) Create(property *models.Property) error {
	s.created = append(s.created, *property)
	s.byID[property.ID] = property
	return nil
}

func (s *stubPropertyRepo) Update(property *models.Property) error {
	s.byID[property.ID] = property
	return nil
}

func (s *stubPropertyRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	s.updated[id] = updateDoc
	return nil
}

func (s *stubPropertyRepo) Delete(id string) error {
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return nil
}

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

func validListing() models.Property {
	return models.Property{
		AgentID:     "agent-1",
		Title:       "Two-bed apartment",
		Address:     "14 Elm Road",
		City:        "Nairobi",
		Price:       150000,
		ListingType: "rent",
	}
}

func TestPublish_CreatesListingAndFeedPost(t *testing.T) {
	repo := newStubPropertyRepo()
	feed := &stubFeedRepo{}
	svc := &DefaultPropertyService{Repo: repo, Feed: feed}

	listing, err := svc.Publish(validListing())
	require.NoError(t, err)
	require.NotNil(t, listing)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, models.PropertyAvailable, listing.Status)

	require.Len(t, feed.posts, 1)
	assert.Equal(t, models.FeedListingPublished, feed.posts[0].Kind)
	assert.Equal(t, listing.ID, feed.posts[0].RefID)
	assert.Equal(t, "agent-1", feed.posts[0].AgentID)
}

func TestPublish_RejectsInvalidListings(t *testing.T) {
	svc := &DefaultPropertyService{Repo: newStubPropertyRepo(), Feed: &stubFeedRepo{}}

	tests := []struct {
		name   string
		mutate func(*models.Property)
	}{
		{"missing title", func(p *models.Property) { p.Title = "" }},
		{"missing agent", func(p *models.Property) { p.AgentID = "" }},
		{"bad listing type", func(p *models.Property) { p.ListingType = "lease" }},
		{"zero price", func(p *models.Property) { p.Price = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			listing := validListing()
			tc.mutate(&listing)
			_, err := svc.Publish(listing)
			assert.Error(t, err)
		})
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := &DefaultPropertyService{Repo: repo, Feed: &stubFeedRepo{}}

	err := svc.UpdateStatus("p1", "demolished")
	require.Error(t, err)
	assert.Empty(t, repo.updated)
}

func TestUpdateStatus_WritesStatusDocument(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := &DefaultPropertyService{Repo: repo, Feed: &stubFeedRepo{}}

	require.NoError(t, svc.UpdateStatus("p1", models.PropertySold))
	doc, ok := repo.updated["p1"]
	require.True(t, ok)
	assert.Equal(t, models.PropertySold, doc["status"])
}
