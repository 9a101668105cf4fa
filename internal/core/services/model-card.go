package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"model-card-service/internal/card"
	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
)

type ModelCardService struct {
	cards     ports.ModelCardRepository
	revisions ports.CardRevisionRepository
	search    ports.SearchClient
}

func NewModelCardService(cards ports.ModelCardRepository, revisions ports.CardRevisionRepository, search ports.SearchClient) *ModelCardService {
	return &ModelCardService{cards: cards, revisions: revisions, search: search}
}

// Create registers a card from its raw markdown. The document must pass
// structural validation; the front-matter fields are denormalized onto the
// catalog entry and revision 1 stores the raw text verbatim.
func (s *ModelCardService) Create(ctx context.Context, projectID uuid.UUID, name, description string, raw []byte, comment string) (*domain.ModelCard, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidCardName
	}

	doc, err := card.Parse(raw)
	if err != nil {
		return nil, err
	}
	if err := card.Validate(doc); err != nil {
		return nil, err
	}

	now := time.Now()
	mc := &domain.ModelCard{
		ID:             uuid.New(),
		CreatedAt:      now,
		UpdatedAt:      now,
		ProjectID:      projectID,
		Name:           name,
		Slug:           domain.Slugify(name),
		Description:    description,
		State:          domain.CardStateLive,
		LatestRevision: 1,
	}
	applyFrontMatter(mc, doc)

	if err := s.cards.Create(ctx, mc); err != nil {
		return nil, err
	}

	rev := &domain.CardRevision{
		ID:        uuid.New(),
		CardID:    mc.ID,
		Number:    1,
		Comment:   comment,
		Raw:       string(raw),
		CreatedAt: now,
	}
	if err := s.revisions.Create(ctx, rev); err != nil {
		return nil, err
	}

	s.indexCard(ctx, mc, doc)

	return s.cards.GetByID(ctx, projectID, mc.ID)
}

func (s *ModelCardService) Get(ctx context.Context, projectID uuid.UUID, id uuid.UUID) (*domain.ModelCard, error) {
	return s.cards.GetByID(ctx, projectID, id)
}

func (s *ModelCardService) GetByParams(ctx context.Context, projectID uuid.UUID, name, slug string) (*domain.ModelCard, error) {
	return s.cards.GetByParams(ctx, projectID, name, slug)
}

func (s *ModelCardService) List(ctx context.Context, filter ports.CardListFilter) ([]*domain.ModelCard, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.cards.List(ctx, filter)
}

func (s *ModelCardService) Update(ctx context.Context, projectID uuid.UUID, id uuid.UUID, updates map[string]interface{}) (*domain.ModelCard, error) {
	mc, err := s.cards.GetByID(ctx, projectID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		mc.Name = v.(string)
		mc.Slug = domain.Slugify(mc.Name)
	}
	if v, ok := updates["description"]; ok && v != nil {
		mc.Description = v.(string)
	}
	if v, ok := updates["state"]; ok && v != nil {
		state := domain.CardState(v.(string))
		if state != domain.CardStateLive && state != domain.CardStateArchived {
			return nil, domain.ErrInvalidState
		}
		mc.State = state
	}

	if err := s.cards.Update(ctx, projectID, mc); err != nil {
		return nil, err
	}

	return s.cards.GetByID(ctx, projectID, id)
}

// Delete removes a card and its revisions. Only archived cards can go.
func (s *ModelCardService) Delete(ctx context.Context, projectID uuid.UUID, id uuid.UUID) error {
	mc, err := s.cards.GetByID(ctx, projectID, id)
	if err != nil {
		return err
	}

	if mc.State != domain.CardStateArchived {
		return domain.ErrCannotDeleteCard
	}

	if err := s.cards.Delete(ctx, projectID, id); err != nil {
		return err
	}

	if s.search != nil && s.search.IsAvailable() {
		if err := s.search.Remove(ctx, id); err != nil {
			log.WithError(err).Warn("remove card from search index failed")
		}
	}
	return nil
}

// AddRevision appends a new raw snapshot and refreshes the denormalized
// front-matter fields from it.
func (s *ModelCardService) AddRevision(ctx context.Context, projectID uuid.UUID, cardID uuid.UUID, raw []byte, comment string) (*domain.CardRevision, error) {
	mc, err := s.cards.GetByID(ctx, projectID, cardID)
	if err != nil {
		return nil, err
	}

	doc, err := card.Parse(raw)
	if err != nil {
		return nil, err
	}
	if err := card.Validate(doc); err != nil {
		return nil, err
	}

	rev := &domain.CardRevision{
		ID:        uuid.New(),
		CardID:    mc.ID,
		Number:    mc.LatestRevision + 1,
		Comment:   comment,
		Raw:       string(raw),
		CreatedAt: time.Now(),
	}
	if err := s.revisions.Create(ctx, rev); err != nil {
		return nil, err
	}

	mc.LatestRevision = rev.Number
	applyFrontMatter(mc, doc)
	if err := s.cards.Update(ctx, projectID, mc); err != nil {
		return nil, err
	}

	s.indexCard(ctx, mc, doc)

	return rev, nil
}

func (s *ModelCardService) ListRevisions(ctx context.Context, projectID uuid.UUID, cardID uuid.UUID, limit, offset int) ([]*domain.CardRevision, int, error) {
	if _, err := s.cards.GetByID(ctx, projectID, cardID); err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = 20
	}
	return s.revisions.ListByCard(ctx, cardID, limit, offset)
}

func (s *ModelCardService) GetRevision(ctx context.Context, projectID uuid.UUID, cardID uuid.UUID, number int) (*domain.CardRevision, error) {
	if _, err := s.cards.GetByID(ctx, projectID, cardID); err != nil {
		return nil, err
	}
	if number <= 0 {
		return s.revisions.Latest(ctx, cardID)
	}
	return s.revisions.GetByNumber(ctx, cardID, number)
}

// Rendered re-renders a revision in the generator's canonical shape. A
// number of 0 means the latest revision.
func (s *ModelCardService) Rendered(ctx context.Context, projectID uuid.UUID, cardID uuid.UUID, number int) ([]byte, error) {
	rev, err := s.GetRevision(ctx, projectID, cardID, number)
	if err != nil {
		return nil, err
	}

	doc, err := card.Parse([]byte(rev.Raw))
	if err != nil {
		return nil, err
	}
	return card.Render(doc)
}

func applyFrontMatter(mc *domain.ModelCard, doc *domain.CardDocument) {
	mc.BaseModel = doc.Front.BaseModel
	mc.License = doc.Front.License
	mc.LibraryName = doc.Front.LibraryName
	mc.Tags = doc.Front.Tags
	mc.Datasets = doc.Front.Datasets
	if mc.Tags == nil {
		mc.Tags = []string{}
	}
	if mc.Datasets == nil {
		mc.Datasets = []string{}
	}
}

// indexCard is best effort: a down search cluster must not fail the write.
func (s *ModelCardService) indexCard(ctx context.Context, mc *domain.ModelCard, doc *domain.CardDocument) {
	if s.search == nil || !s.search.IsAvailable() {
		return
	}
	if err := s.search.Index(ctx, BuildSummary(mc, doc)); err != nil {
		log.WithError(err).WithField("card_id", mc.ID).Warn("index card failed")
	}
}

// BuildSummary flattens a card and its parsed document into the shape the
// search index stores.
func BuildSummary(mc *domain.ModelCard, doc *domain.CardDocument) *ports.CardSummary {
	var text strings.Builder
	text.WriteString(doc.Summary)
	for _, name := range doc.SectionOrder {
		if body, ok := doc.Sections[name]; ok && body != card.Placeholder {
			text.WriteString("\n")
			text.WriteString(body)
		}
	}

	return &ports.CardSummary{
		ID:          mc.ID,
		ProjectID:   mc.ProjectID,
		Name:        mc.Name,
		Slug:        mc.Slug,
		BaseModel:   mc.BaseModel,
		License:     mc.License,
		LibraryName: mc.LibraryName,
		Tags:        mc.Tags,
		Text:        text.String(),
	}
}
