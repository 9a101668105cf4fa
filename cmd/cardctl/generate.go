package main

import (
	"encoding/json"
	"fmt"
	"os"

	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/services"

	"github.com/spf13/cobra"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate <report.json>",
	Short: "Generate a model card from a training run report",
	Long:  "Render the canonical model card markdown from a training run report (JSON)",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "file to write the card to (default: stdout)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var report domain.TrainingReport
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	raw, err := services.NewGeneratorService().GenerateRaw(&report)
	if err != nil {
		return err
	}

	return writeOutput(generateOutput, raw)
}
