package handlers

import (
	"net/http"

	"model-card-service/internal/adapters/primary/http/dto"
	"model-card-service/internal/card"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GenerateCard renders a card from a training run report without storing
// anything. Trainer integrations call this to preview the README before
// registering it.
func (h *Handler) GenerateCard(c *gin.Context) {
	var req dto.GenerateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rendered, err := h.generatorSvc.GenerateRaw(req.ToTrainingReport())
	if err != nil {
		log.WithError(err).Error("generate card failed")
		mapDomainError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", rendered)
}

// ValidateCard lints raw markdown and reports every violation. Always 200
// when the document at least parses; structural findings land in problems.
func (h *Handler) ValidateCard(c *gin.Context) {
	var req dto.ValidateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := card.Parse([]byte(req.Raw))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	findings := card.Lint(doc)
	problems := make([]string, 0, len(findings))
	for _, f := range findings {
		problems = append(problems, f.Error())
	}

	c.JSON(http.StatusOK, dto.ValidateCardResponse{
		Valid:    len(problems) == 0,
		Problems: problems,
	})
}
