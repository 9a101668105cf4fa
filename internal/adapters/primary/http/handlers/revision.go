package handlers

import (
	"net/http"
	"strconv"

	"model-card-service/internal/adapters/primary/http/dto"
	"model-card-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListRevisions(c *gin.Context) {
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

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	revs, total, err := h.cardSvc.ListRevisions(c.Request.Context(), projectID, cardID, limit, offset)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.CardRevisionResponse, 0, len(revs))
	for _, rev := range revs {
		items = append(items, dto.ToCardRevisionResponse(rev))
	}

	c.JSON(http.StatusOK, dto.ListCardRevisionsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetRevision(c *gin.Context) {
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

	number, err := strconv.Atoi(c.Param("num"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid revision number"})
		return
	}

	rev, err := h.cardSvc.GetRevision(c.Request.Context(), projectID, cardID, number)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardRevisionResponse(rev))
}

func (h *Handler) AddRevision(c *gin.Context) {
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

	var req dto.AddRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rev, err := h.cardSvc.AddRevision(c.Request.Context(), projectID, cardID, []byte(req.Raw), req.Comment)
	if err != nil {
		log.WithError(err).Error("add revision failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardRevisionResponse(rev))
}

// GetRendered returns the canonical markdown of a revision. The revision
// query parameter selects a specific one; absent means latest.
func (h *Handler) GetRendered(c *gin.Context) {
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

	number, _ := strconv.Atoi(c.DefaultQuery("revision", "0"))

	rendered, err := h.cardSvc.Rendered(c.Request.Context(), projectID, cardID, number)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", rendered)
}
