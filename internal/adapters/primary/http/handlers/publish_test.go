package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"model-card-service/internal/core/domain"
	"model-card-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPublishCard(t *testing.T) {
	m, r := setupRouter()
	m.publisher.Available = true

	projectID := uuid.New()
	mc := sampleModelCard(projectID)
	rev := &domain.CardRevision{
		ID:     uuid.New(),
		CardID: mc.ID,
		Number: 1,
		Raw:    string(testutil.SampleCardRaw("mistral-lora")),
	}
	m.cards.On("GetByID", mock.Anything, projectID, mc.ID).Return(mc, nil)
	m.revisions.On("Latest", mock.Anything, mc.ID).Return(rev, nil)
	m.publisher.On("Publish", mock.Anything, "ml-serving", mc, mock.AnythingOfType("[]uint8")).
		Return("uid-123", nil)

	req, _ := http.NewRequest("POST", "/api/v1/model-cards/cards/"+mc.ID.String()+"/publish?namespace=ml-serving", nil)
	req.Header.Set("Project-ID", projectID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uid-123")
}

func TestPublishCard_NotConfigured(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/v1/model-cards/cards/"+uuid.New().String()+"/publish", nil)
	req.Header.Set("Project-ID", uuid.New().String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUnpublishCard(t *testing.T) {
	m, r := setupRouter()
	m.publisher.Available = true

	projectID := uuid.New()
	mc := sampleModelCard(projectID)
	m.cards.On("GetByID", mock.Anything, projectID, mc.ID).Return(mc, nil)
	m.publisher.On("Unpublish", mock.Anything, "", mc.Slug).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/model-cards/cards/"+mc.ID.String()+"/publish", nil)
	req.Header.Set("Project-ID", projectID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unpublished")
}
