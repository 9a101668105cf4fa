package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
)

// MockSearchClient is a mock of SearchClient.
type MockSearchClient struct {
	mock.Mock
	Available bool
}

func (m *MockSearchClient) IsAvailable() bool {
	return m.Available
}

func (m *MockSearchClient) Index(ctx context.Context, summary *ports.CardSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockSearchClient) BulkIndex(ctx context.Context, summaries []*ports.CardSummary) error {
	args := m.Called(ctx, summaries)
	return args.Error(0)
}

func (m *MockSearchClient) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSearchClient) Search(ctx context.Context, projectID uuid.UUID, query string, limit int) ([]ports.SearchHit, error) {
	args := m.Called(ctx, projectID, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.SearchHit), args.Error(1)
}

// MockPublisherClient is a mock of PublisherClient.
type MockPublisherClient struct {
	mock.Mock
	Available bool
}

func (m *MockPublisherClient) IsAvailable() bool {
	return m.Available
}

func (m *MockPublisherClient) Publish(ctx context.Context, namespace string, card *domain.ModelCard, rendered []byte) (string, error) {
	args := m.Called(ctx, namespace, card, rendered)
	return args.String(0), args.Error(1)
}

func (m *MockPublisherClient) Unpublish(ctx context.Context, namespace string, slug string) error {
	args := m.Called(ctx, namespace, slug)
	return args.Error(0)
}
