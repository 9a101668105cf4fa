package domain

// CardDocument is the parsed form of a model card: YAML front-matter plus a
// markdown body with a fixed set of sections. The raw markdown stored in a
// revision stays the source of truth; this model carries only the recognized
// schema.
type CardDocument struct {
	Front FrontMatter

	// ModelName is the H1 title, usually the training run name.
	ModelName string

	// Summary is the paragraph between the title and the first section,
	// e.g. "This model is a fine-tuned version of ... on the ... dataset."
	Summary string

	// Sections maps canonical heading -> body text (without the heading line).
	Sections map[string]string

	// SectionOrder records headings in document order, duplicates included,
	// so structural validation can count occurrences.
	SectionOrder []string

	// Hyperparameters and FrameworkVersions are ordered name/value pairs,
	// written once by the report generator.
	Hyperparameters   []Param
	FrameworkVersions []Param
}

type FrontMatter struct {
	LibraryName string            `yaml:"library_name,omitempty" json:"library_name,omitempty"`
	License     string            `yaml:"license,omitempty" json:"license,omitempty"`
	BaseModel   string            `yaml:"base_model,omitempty" json:"base_model,omitempty"`
	Tags        []string          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Datasets    []string          `yaml:"datasets,omitempty" json:"datasets,omitempty"`
	ModelIndex  []ModelIndexEntry `yaml:"model-index,omitempty" json:"model_index,omitempty"`
}

type ModelIndexEntry struct {
	Name    string       `yaml:"name" json:"name"`
	Results []EvalResult `yaml:"results" json:"results"`
}

type EvalResult struct {
	Task    EvalTask     `yaml:"task" json:"task"`
	Dataset EvalDataset  `yaml:"dataset" json:"dataset"`
	Metrics []EvalMetric `yaml:"metrics" json:"metrics"`
}

type EvalTask struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Type string `yaml:"type" json:"type"`
}

type EvalDataset struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
}

type EvalMetric struct {
	Name  string  `yaml:"name,omitempty" json:"name,omitempty"`
	Type  string  `yaml:"type" json:"type"`
	Value float64 `yaml:"value" json:"value"`
}

// Param is an ordered name/value pair. Hyperparameters keep the order the
// trainer reported them in, so a plain map is not enough.
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LookupParam returns the value for name, preserving a found flag so callers
// can tell an absent parameter from an empty one.
func LookupParam(params []Param, name string) (string, bool) {
	for _, p := range params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
