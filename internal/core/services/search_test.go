package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
	"model-card-service/internal/testutil"
)

func TestSearchService_NotConfigured(t *testing.T) {
	svc := NewSearchService(nil, new(testutil.MockModelCardRepo), new(testutil.MockCardRevisionRepo))

	_, err := svc.Search(context.Background(), uuid.New(), "mistral", 10)
	assert.ErrorIs(t, err, domain.ErrSearchNotAvailable)
}

func TestSearchService_Search(t *testing.T) {
	search := &testutil.MockSearchClient{Available: true}
	svc := NewSearchService(search, new(testutil.MockModelCardRepo), new(testutil.MockCardRevisionRepo))

	projectID := uuid.New()
	hits := []ports.SearchHit{{ID: uuid.New(), Name: "m1", Score: 1.5}}
	search.On("Search", mock.Anything, projectID, "mistral", 10).Return(hits, nil)

	result, err := svc.Search(context.Background(), projectID, "mistral", 10)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestSearchService_Search_DefaultLimit(t *testing.T) {
	search := &testutil.MockSearchClient{Available: true}
	svc := NewSearchService(search, new(testutil.MockModelCardRepo), new(testutil.MockCardRevisionRepo))

	projectID := uuid.New()
	search.On("Search", mock.Anything, projectID, "q", 20).Return([]ports.SearchHit{}, nil)

	_, err := svc.Search(context.Background(), projectID, "q", 0)
	assert.NoError(t, err)
}

func TestSearchService_ReindexAll_SkipsUnparsable(t *testing.T) {
	search := &testutil.MockSearchClient{Available: true}
	cards := new(testutil.MockModelCardRepo)
	revisions := new(testutil.MockCardRevisionRepo)
	svc := NewSearchService(search, cards, revisions)

	projectID := uuid.New()
	good := &domain.ModelCard{ID: uuid.New(), ProjectID: projectID, Name: "good"}
	bad := &domain.ModelCard{ID: uuid.New(), ProjectID: projectID, Name: "bad"}

	cards.On("List", mock.Anything, mock.AnythingOfType("ports.CardListFilter")).Return([]*domain.ModelCard{good, bad}, 2, nil)
	revisions.On("Latest", mock.Anything, good.ID).Return(&domain.CardRevision{Raw: string(testutil.SampleCardRaw("good"))}, nil)
	revisions.On("Latest", mock.Anything, bad.ID).Return(&domain.CardRevision{Raw: "no front matter here"}, nil)
	search.On("BulkIndex", mock.Anything, mock.MatchedBy(func(s []*ports.CardSummary) bool {
		return len(s) == 1 && s[0].Name == "good"
	})).Return(nil)

	indexed, err := svc.ReindexAll(context.Background(), projectID)
	require.NoError(t, err)
	assert.Equal(t, 1, indexed)
	search.AssertExpectations(t)
}
