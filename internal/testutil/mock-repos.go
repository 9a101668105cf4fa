package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
)

// MockModelCardRepo is a mock of ModelCardRepository.
type MockModelCardRepo struct {
	mock.Mock
}

func (m *MockModelCardRepo) Create(ctx context.Context, card *domain.ModelCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockModelCardRepo) GetByID(ctx context.Context, projectID uuid.UUID, id uuid.UUID) (*domain.ModelCard, error) {
	args := m.Called(ctx, projectID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelCard), args.Error(1)
}

func (m *MockModelCardRepo) GetByParams(ctx context.Context, projectID uuid.UUID, name string, slug string) (*domain.ModelCard, error) {
	args := m.Called(ctx, projectID, name, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelCard), args.Error(1)
}

func (m *MockModelCardRepo) Update(ctx context.Context, projectID uuid.UUID, card *domain.ModelCard) error {
	args := m.Called(ctx, projectID, card)
	return args.Error(0)
}

func (m *MockModelCardRepo) Delete(ctx context.Context, projectID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, projectID, id)
	return args.Error(0)
}

func (m *MockModelCardRepo) List(ctx context.Context, filter ports.CardListFilter) ([]*domain.ModelCard, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.ModelCard), args.Int(1), args.Error(2)
}

// MockCardRevisionRepo is a mock of CardRevisionRepository.
type MockCardRevisionRepo struct {
	mock.Mock
}

func (m *MockCardRevisionRepo) Create(ctx context.Context, rev *domain.CardRevision) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *MockCardRevisionRepo) GetByNumber(ctx context.Context, cardID uuid.UUID, number int) (*domain.CardRevision, error) {
	args := m.Called(ctx, cardID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardRevision), args.Error(1)
}

func (m *MockCardRevisionRepo) Latest(ctx context.Context, cardID uuid.UUID) (*domain.CardRevision, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardRevision), args.Error(1)
}

func (m *MockCardRevisionRepo) ListByCard(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]*domain.CardRevision, int, error) {
	args := m.Called(ctx, cardID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.CardRevision), args.Int(1), args.Error(2)
}
