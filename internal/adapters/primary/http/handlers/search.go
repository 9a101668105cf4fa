package handlers

import (
	"net/http"
	"strconv"

	"model-card-service/internal/adapters/primary/http/dto"
	"model-card-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) SearchCards(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	hits, err := h.searchSvc.Search(c.Request.Context(), projectID, query, limit)
	if err != nil {
		log.WithError(err).Error("search cards failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.SearchHitResponse, 0, len(hits))
	for _, hit := range hits {
		items = append(items, dto.SearchHitResponse{
			ID:    hit.ID.String(),
			Name:  hit.Name,
			Score: hit.Score,
		})
	}

	c.JSON(http.StatusOK, dto.SearchCardsResponse{Items: items, Total: len(items)})
}

func (h *Handler) Reindex(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	indexed, err := h.searchSvc.ReindexAll(c.Request.Context(), projectID)
	if err != nil {
		log.WithError(err).Error("reindex failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReindexResponse{Indexed: indexed})
}
