package card

import (
	"fmt"
	"strings"

	"model-card-service/internal/core/domain"
)

// Validate checks the structural properties a hosting platform relies on:
// required front-matter keys present and non-empty, and every required
// section heading appearing exactly once. The first violation is returned.
func Validate(doc *domain.CardDocument) error {
	for _, err := range Lint(doc) {
		return err
	}
	return nil
}

// Lint returns every structural violation, for tooling that reports all
// findings at once.
func Lint(doc *domain.CardDocument) []error {
	var errs []error

	if strings.TrimSpace(doc.Front.License) == "" {
		errs = append(errs, domain.ErrMissingLicense)
	}
	if strings.TrimSpace(doc.Front.BaseModel) == "" {
		errs = append(errs, domain.ErrMissingBaseModel)
	}
	if len(doc.Front.Tags) == 0 {
		errs = append(errs, domain.ErrMissingTags)
	} else {
		for _, t := range doc.Front.Tags {
			if strings.TrimSpace(t) == "" {
				errs = append(errs, fmt.Errorf("%w: blank tag entry", domain.ErrMissingTags))
				break
			}
		}
	}

	counts := map[string]int{}
	for _, s := range doc.SectionOrder {
		counts[s]++
	}
	for _, required := range RequiredSections {
		switch counts[required] {
		case 0:
			errs = append(errs, fmt.Errorf("%w: %q", domain.ErrMissingSection, required))
		case 1:
		default:
			errs = append(errs, fmt.Errorf("%w: %q", domain.ErrDuplicateSection, required))
		}
	}

	return errs
}
