package feed

import (
	"testing"
	"time"

	"nestora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeedRepo struct {
	posts   []models.FeedPost
	created []models.FeedPost
	err     error
}

func (s *stubFeedRepo) Create(post *models.FeedPost) error {
	s.created = append(s.created, *post)
	return s.err
}

func (s *stubFeedRepo) GetByAgent(agentID string, limit int64) ([]models.FeedPost, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.FeedPost
	for _, p := range s.posts {
		if p.AgentID == agentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestTimeline_ReturnsAgentPosts(t *testing.T) {
	repo := &stubFeedRepo{posts: []models.FeedPost{
		{ID: "p1", AgentID: "agent-1", Kind: models.FeedListingPublished, CreatedAt: time.Now()},
		{ID: "p2", AgentID: "agent-2", Kind: models.FeedInspectionBooked, CreatedAt: time.Now()},
		{ID: "p3", AgentID: "agent-1", Kind: models.FeedMaintenanceResolved, CreatedAt: time.Now()},
	}}
	svc := &DefaultFeedService{Repo: repo}

	posts, err := svc.Timeline("agent-1")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "p3", posts[1].ID)
}

func TestTimeline_EmptyFeedIsNotNil(t *testing.T) {
	svc := &DefaultFeedService{Repo: &stubFeedRepo{}}

	posts, err := svc.Timeline("agent-without-posts")
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestTimeline_RepositoryError(t *testing.T) {
	svc := &DefaultFeedService{Repo: &stubFeedRepo{err: assert.AnError}}

	_, err := svc.Timeline("agent-1")
	require.Error(t, err)
}
