package dto

import (
	"time"

	"github.com/google/uuid"

	"model-card-service/internal/core/domain"
)

type AddRevisionRequest struct {
	Raw     string `json:"raw" binding:"required"`
	Comment string `json:"comment"`
}

type CardRevisionResponse struct {
	ID        uuid.UUID `json:"id"`
	CardID    uuid.UUID `json:"card_id"`
	Number    int       `json:"number"`
	Comment   string    `json:"comment"`
	Raw       string    `json:"raw"`
	CreatedAt string    `json:"created_at"`
}

type ListCardRevisionsResponse struct {
	Items      []CardRevisionResponse `json:"items"`
	Total      int                    `json:"total"`
	PageSize   int                    `json:"page_size"`
	NextOffset int                    `json:"next_offset"`
}

func ToCardRevisionResponse(rev *domain.CardRevision) CardRevisionResponse {
	return CardRevisionResponse{
		ID:        rev.ID,
		CardID:    rev.CardID,
		Number:    rev.Number,
		Comment:   rev.Comment,
		Raw:       rev.Raw,
		CreatedAt: rev.CreatedAt.Format(time.RFC3339),
	}
}
