package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"model-card-service/internal/core/domain"
	"model-card-service/internal/testutil"
)

func TestPublishService_NotConfigured(t *testing.T) {
	svc := NewPublishService(nil, new(testutil.MockModelCardRepo), new(testutil.MockCardRevisionRepo))

	_, err := svc.Publish(context.Background(), uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, domain.ErrPublisherNotAvailable)
}

func TestPublishService_Publish(t *testing.T) {
	publisher := &testutil.MockPublisherClient{Available: true}
	cards := new(testutil.MockModelCardRepo)
	revisions := new(testutil.MockCardRevisionRepo)
	svc := NewPublishService(publisher, cards, revisions)

	projectID := uuid.New()
	id := uuid.New()
	mc := &domain.ModelCard{ID: id, Name: "test-run", Slug: "test-run"}

	cards.On("GetByID", mock.Anything, projectID, id).Return(mc, nil)
	revisions.On("Latest", mock.Anything, id).Return(&domain.CardRevision{
		Raw: string(testutil.SampleCardRaw("test-run")),
	}, nil)
	publisher.On("Publish", mock.Anything, "ml-serving", mc, mock.AnythingOfType("[]uint8")).Return("uid-123", nil)

	uid, err := svc.Publish(context.Background(), projectID, id, "ml-serving")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", uid)
}

func TestPublishService_Publish_NoRevision(t *testing.T) {
	publisher := &testutil.MockPublisherClient{Available: true}
	cards := new(testutil.MockModelCardRepo)
	revisions := new(testutil.MockCardRevisionRepo)
	svc := NewPublishService(publisher, cards, revisions)

	projectID := uuid.New()
	id := uuid.New()
	cards.On("GetByID", mock.Anything, projectID, id).Return(&domain.ModelCard{ID: id}, nil)
	revisions.On("Latest", mock.Anything, id).Return(nil, domain.ErrRevisionNotFound)

	_, err := svc.Publish(context.Background(), projectID, id, "")
	assert.ErrorIs(t, err, domain.ErrRevisionNotFound)
}

func TestPublishService_Unpublish(t *testing.T) {
	publisher := &testutil.MockPublisherClient{Available: true}
	cards := new(testutil.MockModelCardRepo)
	svc := NewPublishService(publisher, cards, new(testutil.MockCardRevisionRepo))

	projectID := uuid.New()
	id := uuid.New()
	cards.On("GetByID", mock.Anything, projectID, id).Return(&domain.ModelCard{ID: id, Slug: "test-run"}, nil)
	publisher.On("Unpublish", mock.Anything, "ml-serving", "test-run").Return(nil)

	assert.NoError(t, svc.Unpublish(context.Background(), projectID, id, "ml-serving"))
}
