package services

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"model-card-service/internal/card"
	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
)

type SearchService struct {
	search    ports.SearchClient
	cards     ports.ModelCardRepository
	revisions ports.CardRevisionRepository
}

func NewSearchService(search ports.SearchClient, cards ports.ModelCardRepository, revisions ports.CardRevisionRepository) *SearchService {
	return &SearchService{search: search, cards: cards, revisions: revisions}
}

func (s *SearchService) Search(ctx context.Context, projectID uuid.UUID, query string, limit int) ([]ports.SearchHit, error) {
	if s.search == nil || !s.search.IsAvailable() {
		return nil, domain.ErrSearchNotAvailable
	}
	if limit <= 0 {
		limit = 20
	}
	return s.search.Search(ctx, projectID, query, limit)
}

// ReindexAll rebuilds the index from the catalog, one page of cards at a
// time. Cards whose latest revision no longer parses are skipped with a
// warning rather than aborting the whole run. Returns the indexed count.
func (s *SearchService) ReindexAll(ctx context.Context, projectID uuid.UUID) (int, error) {
	if s.search == nil || !s.search.IsAvailable() {
		return 0, domain.ErrSearchNotAvailable
	}

	const pageSize = 100
	indexed := 0

	for offset := 0; ; offset += pageSize {
		page, _, err := s.cards.List(ctx, ports.CardListFilter{
			ProjectID: projectID,
			Limit:     pageSize,
			Offset:    offset,
		})
		if err != nil {
			return indexed, err
		}
		if len(page) == 0 {
			return indexed, nil
		}

		summaries := make([]*ports.CardSummary, 0, len(page))
		for _, mc := range page {
			rev, err := s.revisions.Latest(ctx, mc.ID)
			if err != nil {
				log.WithError(err).WithField("card_id", mc.ID).Warn("skip card without revision")
				continue
			}
			doc, err := card.Parse([]byte(rev.Raw))
			if err != nil {
				log.WithError(err).WithField("card_id", mc.ID).Warn("skip unparsable card")
				continue
			}
			summaries = append(summaries, BuildSummary(mc, doc))
		}

		if len(summaries) > 0 {
			if err := s.search.BulkIndex(ctx, summaries); err != nil {
				return indexed, err
			}
			indexed += len(summaries)
		}

		if len(page) < pageSize {
			return indexed, nil
		}
	}
}
