package testutil

import "fmt"

// SampleCardRaw builds a minimal well-formed model card for the given run
// name, in the exact shape the report generator emits.
func SampleCardRaw(runName string) []byte {
	return []byte(fmt.Sprintf(`---
library_name: peft
license: apache-2.0
base_model: mistralai/Mistral-7B-v0.1
tags:
- generated_from_trainer
model-index:
- name: %[1]s
  results: []
---

# %[1]s

This model is a fine-tuned version of [mistralai/Mistral-7B-v0.1](https://huggingface.co/mistralai/Mistral-7B-v0.1) on an unknown dataset.

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
- seed: 42

### Training results

### Framework versions

- PEFT 0.11.1
- Transformers 4.41.2
- Pytorch 2.3.0+cu121
`, runName))
}
