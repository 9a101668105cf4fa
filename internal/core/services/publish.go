package services

import (
	"context"

	"github.com/google/uuid"

	"model-card-service/internal/card"
	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
)

type PublishService struct {
	publisher ports.PublisherClient
	cards     ports.ModelCardRepository
	revisions ports.CardRevisionRepository
}

func NewPublishService(publisher ports.PublisherClient, cards ports.ModelCardRepository, revisions ports.CardRevisionRepository) *PublishService {
	return &PublishService{publisher: publisher, cards: cards, revisions: revisions}
}

// Publish renders the latest revision and pushes it to the cluster. Returns
// the identifier of the published object.
func (s *PublishService) Publish(ctx context.Context, projectID uuid.UUID, cardID uuid.UUID, namespace string) (string, error) {
	if s.publisher == nil || !s.publisher.IsAvailable() {
		return "", domain.ErrPublisherNotAvailable
	}

	mc, err := s.cards.GetByID(ctx, projectID, cardID)
	if err != nil {
		return "", err
	}

	rev, err := s.revisions.Latest(ctx, cardID)
	if err != nil {
		return "", err
	}

	doc, err := card.Parse([]byte(rev.Raw))
	if err != nil {
		return "", err
	}
	rendered, err := card.Render(doc)
	if err != nil {
		return "", err
	}

	return s.publisher.Publish(ctx, namespace, mc, rendered)
}

func (s *PublishService) Unpublish(ctx context.Context, projectID uuid.UUID, cardID uuid.UUID, namespace string) error {
	if s.publisher == nil || !s.publisher.IsAvailable() {
		return domain.ErrPublisherNotAvailable
	}

	mc, err := s.cards.GetByID(ctx, projectID, cardID)
	if err != nil {
		return err
	}

	return s.publisher.Unpublish(ctx, namespace, mc.Slug)
}
