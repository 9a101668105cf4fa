package handlers

import (
	"model-card-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cardSvc      *services.ModelCardService
	generatorSvc *services.GeneratorService
	searchSvc    *services.SearchService
	publishSvc   *services.PublishService
}

func New(
	cardSvc *services.ModelCardService,
	generatorSvc *services.GeneratorService,
	searchSvc *services.SearchService,
	publishSvc *services.PublishService,
) *Handler {
	return &Handler{
		cardSvc:      cardSvc,
		generatorSvc: generatorSvc,
		searchSvc:    searchSvc,
		publishSvc:   publishSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Model Cards
	r.GET("/cards", h.ListCards)
	r.GET("/cards/:id", h.GetCard)
	r.GET("/card", h.GetCardByParams)
	r.POST("/cards", h.CreateCard)
	r.PATCH("/cards/:id", h.UpdateCard)
	r.DELETE("/cards/:id", h.DeleteCard)

	// Card Revisions (nested under card)
	r.GET("/cards/:id/revisions", h.ListRevisions)
	r.GET("/cards/:id/revisions/:num", h.GetRevision)
	r.POST("/cards/:id/revisions", h.AddRevision)
	r.GET("/cards/:id/rendered", h.GetRendered)

	// Document tooling (stateless)
	r.POST("/generate", h.GenerateCard)
	r.POST("/validate", h.ValidateCard)

	// Search
	r.GET("/search", h.SearchCards)
	r.POST("/reindex", h.Reindex)

	// Publishing (Card-to-Cluster)
	r.POST("/cards/:id/publish", h.PublishCard)
	r.DELETE("/cards/:id/publish", h.UnpublishCard)
}
