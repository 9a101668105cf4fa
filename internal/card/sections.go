// Package card parses, renders and validates auto-generated model cards:
// a YAML front-matter block followed by a markdown body with a fixed set
// of section headings.
package card

import "strings"

// Canonical section headings emitted by the report generator.
const (
	SectionDescription       = "Model description"
	SectionIntendedUses      = "Intended uses & limitations"
	SectionTrainingData      = "Training and evaluation data"
	SectionTrainingProcedure = "Training procedure"
	SectionHyperparameters   = "Training hyperparameters"
	SectionTrainingResults   = "Training results"
	SectionFrameworkVersions = "Framework versions"
)

// RequiredSections must each appear exactly once in a well-formed card.
var RequiredSections = []string{
	SectionDescription,
	SectionIntendedUses,
	SectionTrainingData,
	SectionTrainingProcedure,
	SectionTrainingResults,
	SectionFrameworkVersions,
}

// canonicalSections maps lowercased heading text to its canonical form so
// parsing is case-insensitive.
var canonicalSections = map[string]string{}

func init() {
	for _, s := range append([]string{SectionHyperparameters}, RequiredSections...) {
		canonicalSections[strings.ToLower(s)] = s
	}
}

// Canonical returns the canonical heading for text, or text unchanged when
// the heading is not one the generator owns.
func Canonical(text string) string {
	if c, ok := canonicalSections[strings.ToLower(text)]; ok {
		return c
	}
	return text
}
