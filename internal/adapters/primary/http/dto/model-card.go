package dto

import (
	"time"

	"github.com/google/uuid"

	"model-card-service/internal/core/domain"
)

type CreateModelCardRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Raw         string `json:"raw" binding:"required"`
	Comment     string `json:"comment"`
}

type UpdateModelCardRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	State       *string `json:"state"`
}

type ModelCardResponse struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
	ProjectID      uuid.UUID `json:"project_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	BaseModel      string    `json:"base_model"`
	License        string    `json:"license"`
	LibraryName    string    `json:"library_name"`
	Tags           []string  `json:"tags"`
	Datasets       []string  `json:"datasets"`
	State          string    `json:"state"`
	LatestRevision int       `json:"latest_revision"`
}

type ListModelCardsResponse struct {
	Items      []ModelCardResponse `json:"items"`
	Total      int                 `json:"total"`
	PageSize   int                 `json:"page_size"`
	NextOffset int                 `json:"next_offset"`
}

func ToModelCardResponse(mc *domain.ModelCard) ModelCardResponse {
	return ModelCardResponse{
		ID:             mc.ID,
		CreatedAt:      mc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      mc.UpdatedAt.Format(time.RFC3339),
		ProjectID:      mc.ProjectID,
		Name:           mc.Name,
		Slug:           mc.Slug,
		Description:    mc.Description,
		BaseModel:      mc.BaseModel,
		License:        mc.License,
		LibraryName:    mc.LibraryName,
		Tags:           mc.Tags,
		Datasets:       mc.Datasets,
		State:          string(mc.State),
		LatestRevision: mc.LatestRevision,
	}
}
