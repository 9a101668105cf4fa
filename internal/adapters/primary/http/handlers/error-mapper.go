package handlers

import (
	"errors"
	"net/http"

	"model-card-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrRevisionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrCardNameConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidCardName),
		errors.Is(err, domain.ErrMissingProjectID),
		errors.Is(err, domain.ErrCannotDeleteCard),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrEmptyDocument),
		errors.Is(err, domain.ErrMissingFrontMatter),
		errors.Is(err, domain.ErrUnterminatedFrontMatter),
		errors.Is(err, domain.ErrMalformedFrontMatter),
		errors.Is(err, domain.ErrMissingLicense),
		errors.Is(err, domain.ErrMissingBaseModel),
		errors.Is(err, domain.ErrMissingTags),
		errors.Is(err, domain.ErrMissingSection),
		errors.Is(err, domain.ErrDuplicateSection),
		errors.Is(err, domain.ErrMissingRunName),
		errors.Is(err, domain.ErrMissingBaseModelRef):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrSearchNotAvailable),
		errors.Is(err, domain.ErrPublisherNotAvailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrSearchQueryFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
