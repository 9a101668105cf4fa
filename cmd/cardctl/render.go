package main

import (
	"fmt"
	"os"

	"model-card-service/internal/card"

	"github.com/spf13/cobra"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <card.md>",
	Short: "Re-render a card in canonical form",
	Long:  "Parse a card file and emit it again with canonical section order and placeholders",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "file to write the card to (default: stdout)")
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read card: %w", err)
	}

	doc, err := card.Parse(data)
	if err != nil {
		return err
	}

	rendered, err := card.Render(doc)
	if err != nil {
		return err
	}

	return writeOutput(renderOutput, rendered)
}
