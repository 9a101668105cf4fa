package dto

import (
	"model-card-service/internal/core/domain"
)

type ParamDTO struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

type GenerateCardRequest struct {
	RunName           string              `json:"run_name" binding:"required"`
	BaseModel         string              `json:"base_model" binding:"required"`
	License           string              `json:"license"`
	LibraryName       string              `json:"library_name"`
	Datasets          []string            `json:"datasets"`
	Tags              []string            `json:"tags"`
	Hyperparameters   []ParamDTO          `json:"hyperparameters"`
	FrameworkVersions []ParamDTO          `json:"framework_versions"`
	EvalResults       []domain.EvalResult `json:"eval_results"`
	TrainingLog       string              `json:"training_log"`
}

func (r *GenerateCardRequest) ToTrainingReport() *domain.TrainingReport {
	return &domain.TrainingReport{
		RunName:           r.RunName,
		BaseModel:         r.BaseModel,
		License:           r.License,
		LibraryName:       r.LibraryName,
		Datasets:          r.Datasets,
		Tags:              r.Tags,
		Hyperparameters:   toParams(r.Hyperparameters),
		FrameworkVersions: toParams(r.FrameworkVersions),
		EvalResults:       r.EvalResults,
		TrainingLog:       r.TrainingLog,
	}
}

func toParams(in []ParamDTO) []domain.Param {
	if in == nil {
		return nil
	}
	out := make([]domain.Param, 0, len(in))
	for _, p := range in {
		out = append(out, domain.Param{Name: p.Name, Value: p.Value})
	}
	return out
}

type ValidateCardRequest struct {
	Raw string `json:"raw" binding:"required"`
}

type ValidateCardResponse struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems"`
}

type SearchHitResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type SearchCardsResponse struct {
	Items []SearchHitResponse `json:"items"`
	Total int                 `json:"total"`
}

type ReindexResponse struct {
	Indexed int `json:"indexed"`
}

type PublishCardResponse struct {
	Status    string `json:"status"`
	UID       string `json:"uid,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}
