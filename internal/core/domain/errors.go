package domain

import "errors"

// ============================================================================
// Card Catalog Errors
// ============================================================================

var (
	ErrCardNotFound     = errors.New("model card not found")
	ErrCardNameConflict = errors.New("model card with this name already exists in the project")
	ErrRevisionNotFound = errors.New("card revision not found")
	ErrInvalidCardName  = errors.New("card name is required")
	ErrMissingProjectID = errors.New("project ID is required (Project-ID header)")
	ErrCannotDeleteCard = errors.New("cannot delete card: must be archived first")
	ErrInvalidState     = errors.New("invalid state")
)

// ============================================================================
// Document Errors
// ============================================================================

// Parse errors
var (
	ErrEmptyDocument           = errors.New("document is empty")
	ErrMissingFrontMatter      = errors.New("document has no front-matter block")
	ErrUnterminatedFrontMatter = errors.New("front-matter block is not terminated")
	ErrMalformedFrontMatter    = errors.New("front-matter is not valid YAML")
)

// Validation errors
var (
	ErrMissingLicense   = errors.New("front-matter license is required")
	ErrMissingBaseModel = errors.New("front-matter base_model is required")
	ErrMissingTags      = errors.New("front-matter tags must be non-empty")
	ErrMissingSection   = errors.New("required section is missing")
	ErrDuplicateSection = errors.New("section appears more than once")
)

// ============================================================================
// Generator Errors
// ============================================================================

var (
	ErrMissingRunName      = errors.New("training report run name is required")
	ErrMissingBaseModelRef = errors.New("training report base model is required")
)

// ============================================================================
// Integration Errors
// ============================================================================

var (
	ErrSearchNotAvailable    = errors.New("search index is not configured")
	ErrSearchQueryFailed     = errors.New("search query failed")
	ErrPublisherNotAvailable = errors.New("card publisher is not configured")
)
