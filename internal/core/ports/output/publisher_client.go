package ports

import (
	"context"

	"model-card-service/internal/core/domain"
)

// PublisherClient pushes a rendered card to a cluster so serving workloads
// can mount the metadata next to the model.
type PublisherClient interface {
	IsAvailable() bool
	Publish(ctx context.Context, namespace string, card *domain.ModelCard, rendered []byte) (string, error)
	Unpublish(ctx context.Context, namespace string, slug string) error
}
