package services

import (
	"fmt"
	"strings"

	"model-card-service/internal/card"
	"model-card-service/internal/core/domain"
)

const trainerTag = "generated_from_trainer"

// GeneratorService turns a training run report into a card document with the
// canonical front-matter and section set. It is pure: no ports, no state.
type GeneratorService struct{}

func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

func (s *GeneratorService) Generate(report *domain.TrainingReport) (*domain.CardDocument, error) {
	if strings.TrimSpace(report.RunName) == "" {
		return nil, domain.ErrMissingRunName
	}
	if strings.TrimSpace(report.BaseModel) == "" {
		return nil, domain.ErrMissingBaseModelRef
	}

	tags := append([]string{}, report.Tags...)
	if !contains(tags, trainerTag) {
		tags = append(tags, trainerTag)
	}

	results := report.EvalResults
	if results == nil {
		results = []domain.EvalResult{}
	}

	doc := &domain.CardDocument{
		Front: domain.FrontMatter{
			LibraryName: report.LibraryName,
			License:     report.License,
			BaseModel:   report.BaseModel,
			Tags:        tags,
			Datasets:    report.Datasets,
			ModelIndex: []domain.ModelIndexEntry{
				{Name: report.RunName, Results: results},
			},
		},
		ModelName: report.RunName,
		Summary:   summaryLine(report),
		Sections: map[string]string{
			card.SectionDescription:  card.Placeholder,
			card.SectionIntendedUses: card.Placeholder,
			card.SectionTrainingData: card.Placeholder,
		},
		Hyperparameters:   report.Hyperparameters,
		FrameworkVersions: report.FrameworkVersions,
	}

	if report.TrainingLog != "" {
		doc.Sections[card.SectionTrainingResults] = report.TrainingLog
	}

	// Section order mirrors what Render emits, so the generated document
	// passes structural validation without a render round-trip.
	doc.SectionOrder = append([]string{}, card.RequiredSections...)

	return doc, nil
}

// GenerateRaw is Generate followed by the canonical render.
func (s *GeneratorService) GenerateRaw(report *domain.TrainingReport) ([]byte, error) {
	doc, err := s.Generate(report)
	if err != nil {
		return nil, err
	}
	return card.Render(doc)
}

func summaryLine(report *domain.TrainingReport) string {
	base := fmt.Sprintf("[%s](https://huggingface.co/%s)", report.BaseModel, report.BaseModel)
	switch len(report.Datasets) {
	case 0:
		return fmt.Sprintf("This model is a fine-tuned version of %s on an unknown dataset.", base)
	case 1:
		return fmt.Sprintf("This model is a fine-tuned version of %s on the %s dataset.", base, report.Datasets[0])
	default:
		return fmt.Sprintf("This model is a fine-tuned version of %s on the %s datasets.", base, strings.Join(report.Datasets, ", "))
	}
}

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
