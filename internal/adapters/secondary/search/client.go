package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/google/uuid"

	"model-card-service/internal/config"
	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
)

type searchClient struct {
	es      *es8.Client
	index   string
	enabled bool
}

// NewSearchClient creates the Elasticsearch adapter. With the integration
// disabled it returns a client that reports unavailable, matching the other
// optional integrations.
func NewSearchClient(cfg *config.SearchConfig) (ports.SearchClient, error) {
	if !cfg.Enabled {
		return &searchClient{enabled: false}, nil
	}

	es, err := es8.NewClient(es8.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	// Lightweight ping
	res, err := es.Info()
	if err != nil {
		return nil, fmt.Errorf("connect to elasticsearch: %w", err)
	}
	res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("connect to elasticsearch: %s", res.Status())
	}

	index := cfg.Index
	if strings.TrimSpace(index) == "" {
		index = "model_cards"
	}

	return &searchClient{es: es, index: index, enabled: true}, nil
}

func (c *searchClient) IsAvailable() bool {
	return c.enabled
}

func (c *searchClient) Index(ctx context.Context, summary *ports.CardSummary) error {
	body, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal card summary: %w", err)
	}

	res, err := c.es.Index(c.index, bytes.NewReader(body),
		c.es.Index.WithDocumentID(summary.ID.String()),
		c.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index card summary: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index card summary: %s", res.Status())
	}
	return nil
}

func (c *searchClient) BulkIndex(ctx context.Context, summaries []*ports.CardSummary) error {
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:     c.es,
		Index:      c.index,
		NumWorkers: 4,
	})
	if err != nil {
		return fmt.Errorf("create bulk indexer: %w", err)
	}

	for _, summary := range summaries {
		body, err := json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshal card summary: %w", err)
		}
		item := esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: summary.ID.String(),
			Body:       bytes.NewReader(body),
		}
		if err := bi.Add(ctx, item); err != nil {
			return fmt.Errorf("bulk add failed: %w", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("bulk indexer close failed: %w", err)
	}
	return nil
}

func (c *searchClient) Remove(ctx context.Context, id uuid.UUID) error {
	res, err := c.es.Delete(c.index, id.String(), c.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete card summary: %w", err)
	}
	defer res.Body.Close()

	// A document that was never indexed is fine to "remove".
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete card summary: %s", res.Status())
	}
	return nil
}

func (c *searchClient) Search(ctx context.Context, projectID uuid.UUID, query string, limit int) ([]ports.SearchHit, error) {
	q := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []interface{}{
					map[string]interface{}{
						"term": map[string]interface{}{"project_id.keyword": projectID.String()},
					},
				},
				"must": []interface{}{
					map[string]interface{}{
						"multi_match": map[string]interface{}{
							"query":  query,
							"fields": []string{"name^3", "base_model^2", "tags^2", "text"},
						},
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("encode search query: %w", err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchQueryFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrSearchQueryFailed, res.Status())
	}

	var envelope struct {
		Hits struct {
			Hits []struct {
				ID     string  `json:"_id"`
				Score  float64 `json:"_score"`
				Source struct {
					Name string `json:"name"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	hits := make([]ports.SearchHit, 0, len(envelope.Hits.Hits))
	for _, h := range envelope.Hits.Hits {
		id, err := uuid.Parse(h.ID)
		if err != nil {
			continue
		}
		hits = append(hits, ports.SearchHit{ID: id, Name: h.Source.Name, Score: h.Score})
	}
	return hits, nil
}
