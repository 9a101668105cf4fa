package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"model-card-service/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCard(t *testing.T) {
	_, r := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"run_name":     "mistral-lora",
		"base_model":   "mistralai/Mistral-7B-v0.1",
		"license":      "apache-2.0",
		"library_name": "peft",
		"tags":         []string{"lora"},
		"hyperparameters": []map[string]string{
			{"name": "learning_rate", "value": "0.0002"},
		},
		"framework_versions": []map[string]string{
			{"name": "PEFT", "value": "0.11.1"},
		},
	})
	req, _ := http.NewRequest("POST", "/api/v1/model-cards/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Body.String(), "library_name: peft")
	assert.Contains(t, w.Body.String(), "# mistral-lora")
	assert.Contains(t, w.Body.String(), "- learning_rate: 0.0002")
}

func TestGenerateCard_MissingBaseModel(t *testing.T) {
	_, r := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"run_name": "mistral-lora",
	})
	req, _ := http.NewRequest("POST", "/api/v1/model-cards/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateCard_Valid(t *testing.T) {
	_, r := setupRouter()

	body, _ := json.Marshal(map[string]string{
		"raw": string(testutil.SampleCardRaw("mistral-lora")),
	})
	req, _ := http.NewRequest("POST", "/api/v1/model-cards/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["valid"])
	assert.Empty(t, resp["problems"])
}

func TestValidateCard_ReportsProblems(t *testing.T) {
	_, r := setupRouter()

	raw := `---
base_model: mistralai/Mistral-7B-v0.1
tags:
- lora
---

# broken

## Model description

text
`
	body, _ := json.Marshal(map[string]string{"raw": raw})
	req, _ := http.NewRequest("POST", "/api/v1/model-cards/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid    bool     `json:"valid"`
		Problems []string `json:"problems"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Problems)
}

func TestValidateCard_Unparsable(t *testing.T) {
	_, r := setupRouter()

	body, _ := json.Marshal(map[string]string{"raw": "no front matter"})
	req, _ := http.NewRequest("POST", "/api/v1/model-cards/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
