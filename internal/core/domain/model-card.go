package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CardState string

const (
	CardStateLive     CardState = "LIVE"
	CardStateArchived CardState = "ARCHIVED"
)

// Recognized SPDX-ish license identifiers seen on model hosting platforms.
// Validation is advisory: an unknown identifier is accepted, an empty one
// is not.
var KnownLicenses = map[string]bool{
	"apache-2.0":            true,
	"mit":                   true,
	"openrail":              true,
	"creativeml-openrail-m": true,
	"bigscience-openrail-m": true,
	"cc-by-4.0":             true,
	"cc-by-sa-4.0":          true,
	"cc-by-nc-4.0":          true,
	"gpl-3.0":               true,
	"llama2":                true,
	"llama3":                true,
	"gemma":                 true,
	"other":                 true,
}

// ModelCard is a registered card in the catalog. The front-matter fields that
// platforms filter on (license, base model, tags) are denormalized onto the
// card so list queries do not have to parse revision text.
type ModelCard struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	BaseModel   string    `json:"base_model"`
	License     string    `json:"license"`
	LibraryName string    `json:"library_name"`
	Tags        []string  `json:"tags"`
	Datasets    []string  `json:"datasets"`
	State       CardState `json:"state"`

	// LatestRevision is the highest revision number, 0 when none exist.
	LatestRevision int `json:"latest_revision"`
}

// CardRevision is one immutable snapshot of a card's raw markdown.
type CardRevision struct {
	ID        uuid.UUID `json:"id"`
	CardID    uuid.UUID `json:"card_id"`
	Number    int       `json:"number"`
	Comment   string    `json:"comment"`
	Raw       string    `json:"raw"`
	CreatedAt time.Time `json:"created_at"`
}

func Slugify(name string) string {
	var b strings.Builder
	for _, ch := range name {
		switch {
		case (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.':
			b.WriteRune(ch)
		case ch >= 'A' && ch <= 'Z':
			b.WriteRune(ch + 32)
		case ch == ' ' || ch == '_' || ch == '/':
			b.WriteByte('-')
		}
	}
	slug := b.String()
	if len(slug) > 96 {
		slug = slug[:96]
	}
	return slug
}
