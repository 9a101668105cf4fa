package ports

import (
	"context"

	"github.com/google/uuid"

	"model-card-service/internal/core/domain"
)

type CardListFilter struct {
	ProjectID uuid.UUID
	State     string
	License   string
	BaseModel string
	Tag       string
	Search    string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

type ModelCardRepository interface {
	Create(ctx context.Context, card *domain.ModelCard) error
	GetByID(ctx context.Context, projectID uuid.UUID, id uuid.UUID) (*domain.ModelCard, error)
	GetByParams(ctx context.Context, projectID uuid.UUID, name string, slug string) (*domain.ModelCard, error)
	Update(ctx context.Context, projectID uuid.UUID, card *domain.ModelCard) error
	Delete(ctx context.Context, projectID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, filter CardListFilter) ([]*domain.ModelCard, int, error)
}

type CardRevisionRepository interface {
	Create(ctx context.Context, rev *domain.CardRevision) error
	GetByNumber(ctx context.Context, cardID uuid.UUID, number int) (*domain.CardRevision, error)
	Latest(ctx context.Context, cardID uuid.UUID) (*domain.CardRevision, error)
	ListByCard(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]*domain.CardRevision, int, error)
}
