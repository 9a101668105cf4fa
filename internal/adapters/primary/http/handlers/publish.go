package handlers

import (
	"net/http"

	"model-card-service/internal/adapters/primary/http/dto"
	"model-card-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) PublishCard(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card id"})
		return
	}

	namespace := c.Query("namespace")

	uid, err := h.publishSvc.Publish(c.Request.Context(), projectID, cardID, namespace)
	if err != nil {
		log.WithError(err).Error("publish card failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PublishCardResponse{
		Status:    "published",
		UID:       uid,
		Namespace: namespace,
	})
}

func (h *Handler) UnpublishCard(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card id"})
		return
	}

	namespace := c.Query("namespace")

	if err := h.publishSvc.Unpublish(c.Request.Context(), projectID, cardID, namespace); err != nil {
		log.WithError(err).Error("unpublish card failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PublishCardResponse{Status: "unpublished"})
}
