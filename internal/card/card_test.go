package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-card-service/internal/core/domain"
)

const sampleCard = `---
library_name: peft
license: apache-2.0
base_model: mistralai/Mistral-7B-v0.1
tags:
- generated_from_trainer
- lora
datasets:
- imdb
model-index:
- name: mistral-7b-imdb-lora
  results: []
---

<!-- This model card has been generated automatically according to the information the training pipeline had access to. You
should probably proofread and complete it, then remove this comment. -->

# mistral-7b-imdb-lora

This model is a fine-tuned version of [mistralai/Mistral-7B-v0.1](https://huggingface.co/mistralai/Mistral-7B-v0.1) on the imdb dataset.

## Model description

More information needed

## Intended uses & limitations

More information needed

## Training and evaluation data

More information needed

## Training procedure

### Training hyperparameters

The following hyperparameters were used during training:
- learning_rate: 0.0002
- train_batch_size: 8
- eval_batch_size: 8
- seed: 42
- optimizer: Adam with betas=(0.9,0.999) and epsilon=1e-08
- lr_scheduler_type: cosine
- num_epochs: 3

### Training results

### Framework versions

- PEFT 0.11.1
- Transformers 4.41.2
- Pytorch 2.3.0+cu121
- Datasets 2.19.1
- Tokenizers 0.19.1
`

func TestParse_FrontMatter(t *testing.T) {
	doc, err := Parse([]byte(sampleCard))
	require.NoError(t, err)

	assert.Equal(t, "peft", doc.Front.LibraryName)
	assert.Equal(t, "apache-2.0", doc.Front.License)
	assert.Equal(t, "mistralai/Mistral-7B-v0.1", doc.Front.BaseModel)
	assert.Equal(t, []string{"generated_from_trainer", "lora"}, doc.Front.Tags)
	assert.Equal(t, []string{"imdb"}, doc.Front.Datasets)
	require.Len(t, doc.Front.ModelIndex, 1)
	assert.Equal(t, "mistral-7b-imdb-lora", doc.Front.ModelIndex[0].Name)
}

func TestParse_Body(t *testing.T) {
	doc, err := Parse([]byte(sampleCard))
	require.NoError(t, err)

	assert.Equal(t, "mistral-7b-imdb-lora", doc.ModelName)
	assert.Contains(t, doc.Summary, "fine-tuned version")
	assert.Equal(t, "More information needed", doc.Sections[SectionDescription])
	assert.Contains(t, doc.SectionOrder, SectionTrainingProcedure)
}

func TestParse_Hyperparameters(t *testing.T) {
	doc, err := Parse([]byte(sampleCard))
	require.NoError(t, err)

	require.Len(t, doc.Hyperparameters, 7)
	assert.Equal(t, domain.Param{Name: "learning_rate", Value: "0.0002"}, doc.Hyperparameters[0])
	assert.Equal(t, domain.Param{Name: "num_epochs", Value: "3"}, doc.Hyperparameters[6])

	optimizer, ok := domain.LookupParam(doc.Hyperparameters, "optimizer")
	require.True(t, ok)
	assert.Equal(t, "Adam with betas=(0.9,0.999) and epsilon=1e-08", optimizer)
}

func TestParse_FrameworkVersions(t *testing.T) {
	doc, err := Parse([]byte(sampleCard))
	require.NoError(t, err)

	require.Len(t, doc.FrameworkVersions, 5)
	assert.Equal(t, domain.Param{Name: "PEFT", Value: "0.11.1"}, doc.FrameworkVersions[0])
	assert.Equal(t, domain.Param{Name: "Pytorch", Value: "2.3.0+cu121"}, doc.FrameworkVersions[2])
}

func TestParse_ByteOrderMark(t *testing.T) {
	doc, err := Parse([]byte("\ufeff" + sampleCard))
	require.NoError(t, err)

	assert.Equal(t, "apache-2.0", doc.Front.License)
	assert.Equal(t, "mistral-7b-imdb-lora", doc.ModelName)
}

func TestParse_CRLFLineEndings(t *testing.T) {
	raw := strings.ReplaceAll(sampleCard, "\n", "\r\n")
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "mistralai/Mistral-7B-v0.1", doc.Front.BaseModel)
	assert.Len(t, doc.Hyperparameters, 7)
	assert.NoError(t, Validate(doc))
}

func TestParse_DashLineInBody(t *testing.T) {
	raw := sampleCard + "\n## Extra notes\n\nbefore\n\n---\n\nafter\n"
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)

	// A --- line past the closing fence is body text, not a fence.
	assert.Equal(t, "peft", doc.Front.LibraryName)
	assert.Contains(t, doc.Sections["Extra notes"], "after")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte("   \n\n"))
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestParse_MissingFrontMatter(t *testing.T) {
	_, err := Parse([]byte("# just a readme\n\nno metadata here\n"))
	assert.ErrorIs(t, err, domain.ErrMissingFrontMatter)
}

func TestParse_UnterminatedFrontMatter(t *testing.T) {
	_, err := Parse([]byte("---\nlicense: mit\n\n# body\n"))
	assert.ErrorIs(t, err, domain.ErrUnterminatedFrontMatter)
}

func TestParse_MalformedFrontMatter(t *testing.T) {
	_, err := Parse([]byte("---\nlicense: [unclosed\n---\n\n# body\n"))
	assert.ErrorIs(t, err, domain.ErrMalformedFrontMatter)
}

func TestValidate_OK(t *testing.T) {
	doc, err := Parse([]byte(sampleCard))
	require.NoError(t, err)
	assert.NoError(t, Validate(doc))
}

func TestValidate_MissingLicense(t *testing.T) {
	raw := strings.Replace(sampleCard, "license: apache-2.0\n", "", 1)
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(doc), domain.ErrMissingLicense)
}

func TestValidate_MissingTags(t *testing.T) {
	raw := strings.Replace(sampleCard, "tags:\n- generated_from_trainer\n- lora\n", "", 1)
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(doc), domain.ErrMissingTags)
}

func TestValidate_MissingSection(t *testing.T) {
	raw := strings.Replace(sampleCard, "## Training and evaluation data\n\nMore information needed\n", "", 1)
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(doc), domain.ErrMissingSection)
}

func TestValidate_DuplicateSection(t *testing.T) {
	raw := sampleCard + "\n## Model description\n\nagain\n"
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(doc), domain.ErrDuplicateSection)
}

func TestValidate_CaseInsensitiveHeadings(t *testing.T) {
	raw := strings.Replace(sampleCard, "## Model description", "## MODEL DESCRIPTION", 1)
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.NoError(t, Validate(doc))
}

func TestValidate_BlankTag(t *testing.T) {
	raw := strings.Replace(sampleCard, "- lora\n", "- ' '\n", 1)
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(doc), domain.ErrMissingTags)
}

func TestLint_ReportsAllFindings(t *testing.T) {
	raw := strings.Replace(sampleCard, "license: apache-2.0\n", "", 1)
	raw = strings.Replace(raw, "base_model: mistralai/Mistral-7B-v0.1\n", "", 1)
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)

	errs := Lint(doc)
	assert.Len(t, errs, 2)
}

func TestRender_RoundTrip(t *testing.T) {
	doc, err := Parse([]byte(sampleCard))
	require.NoError(t, err)

	out, err := Render(doc)
	require.NoError(t, err)

	reparsed, err := Parse(out)
	require.NoError(t, err)

	assert.Equal(t, doc.Front, reparsed.Front)
	assert.Equal(t, doc.ModelName, reparsed.ModelName)
	assert.Equal(t, doc.Hyperparameters, reparsed.Hyperparameters)
	assert.Equal(t, doc.FrameworkVersions, reparsed.FrameworkVersions)
	assert.NoError(t, Validate(reparsed))
}
