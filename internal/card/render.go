package card

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"model-card-service/internal/core/domain"
)

const generatedComment = "<!-- This model card has been generated automatically according to the information the training pipeline had access to. You\nshould probably proofread and complete it, then remove this comment. -->"

// Placeholder is the stub text the generator writes for sections it has no
// information for.
const Placeholder = "More information needed"

// Render writes the document back out in the generator's canonical shape:
// front-matter first, then the title and the fixed section order. Section
// text missing from the document is replaced with the standard placeholder.
func Render(doc *domain.CardDocument) ([]byte, error) {
	front, err := yaml.Marshal(&doc.Front)
	if err != nil {
		return nil, fmt.Errorf("marshal front-matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(front)
	b.WriteString("---\n\n")
	b.WriteString(generatedComment)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "# %s\n\n", doc.ModelName)
	if doc.Summary != "" {
		b.WriteString(doc.Summary)
		b.WriteString("\n\n")
	}

	writeSection(&b, 2, SectionDescription, doc.Sections[SectionDescription])
	writeSection(&b, 2, SectionIntendedUses, doc.Sections[SectionIntendedUses])
	writeSection(&b, 2, SectionTrainingData, doc.Sections[SectionTrainingData])

	fmt.Fprintf(&b, "## %s\n\n", SectionTrainingProcedure)
	if body := doc.Sections[SectionTrainingProcedure]; body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "### %s\n\n", SectionHyperparameters)
	if len(doc.Hyperparameters) > 0 {
		b.WriteString("The following hyperparameters were used during training:\n")
		for _, p := range doc.Hyperparameters {
			fmt.Fprintf(&b, "- %s: %s\n", p.Name, p.Value)
		}
		b.WriteString("\n")
	} else {
		b.WriteString(Placeholder)
		b.WriteString("\n\n")
	}

	writeSection(&b, 3, SectionTrainingResults, doc.Sections[SectionTrainingResults])

	fmt.Fprintf(&b, "### %s\n\n", SectionFrameworkVersions)
	for _, p := range doc.FrameworkVersions {
		fmt.Fprintf(&b, "- %s %s\n", p.Name, p.Value)
	}

	return []byte(b.String()), nil
}

func writeSection(b *strings.Builder, level int, heading, body string) {
	fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", level), heading)
	if body == "" {
		body = Placeholder
	}
	b.WriteString(body)
	b.WriteString("\n\n")
}
