package ports

import (
	"context"

	"github.com/google/uuid"
)

// CardSummary is the flattened view of a card that goes into the search
// index: the front-matter fields platforms filter on plus the body text.
type CardSummary struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	BaseModel   string    `json:"base_model"`
	License     string    `json:"license"`
	LibraryName string    `json:"library_name"`
	Tags        []string  `json:"tags"`
	Text        string    `json:"text"`
}

type SearchHit struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Score float64   `json:"score"`
}

type SearchClient interface {
	IsAvailable() bool
	Index(ctx context.Context, summary *CardSummary) error
	BulkIndex(ctx context.Context, summaries []*CardSummary) error
	Remove(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, projectID uuid.UUID, query string, limit int) ([]SearchHit, error)
}
