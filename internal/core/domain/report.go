package domain

// TrainingReport is what a training pipeline hands the report generator at
// the end of a run. Everything here is written once; the generator turns it
// into a CardDocument.
type TrainingReport struct {
	RunName           string       `json:"run_name"`
	BaseModel         string       `json:"base_model"`
	License           string       `json:"license"`
	LibraryName       string       `json:"library_name"`
	Datasets          []string     `json:"datasets"`
	Tags              []string     `json:"tags"`
	Hyperparameters   []Param      `json:"hyperparameters"`
	FrameworkVersions []Param      `json:"framework_versions"`
	EvalResults       []EvalResult `json:"eval_results"`

	// TrainingLog is an optional pre-rendered markdown fragment (usually the
	// per-epoch loss table) placed under the training results section.
	TrainingLog string `json:"training_log"`
}
