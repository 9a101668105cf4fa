package main

import (
	"fmt"
	"os"
	"strings"

	"model-card-service/internal/card"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <card.md>",
	Short: "Show a card's front-matter and training setup",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read card: %w", err)
	}

	doc, err := card.Parse(data)
	if err != nil {
		return err
	}

	color.Cyan("Model:        %s", doc.ModelName)
	fmt.Printf("Base model:   %s\n", doc.Front.BaseModel)
	fmt.Printf("License:      %s\n", doc.Front.License)
	fmt.Printf("Library:      %s\n", doc.Front.LibraryName)
	fmt.Printf("Tags:         %s\n", strings.Join(doc.Front.Tags, ", "))
	if len(doc.Front.Datasets) > 0 {
		fmt.Printf("Datasets:     %s\n", strings.Join(doc.Front.Datasets, ", "))
	}
	fmt.Println()

	if len(doc.Hyperparameters) > 0 {
		color.Cyan("Training hyperparameters")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Value"})
		for _, p := range doc.Hyperparameters {
			table.Append([]string{p.Name, p.Value})
		}
		table.Render()
		fmt.Println()
	}

	if len(doc.FrameworkVersions) > 0 {
		color.Cyan("Framework versions")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Framework", "Version"})
		for _, p := range doc.FrameworkVersions {
			table.Append([]string{p.Name, p.Value})
		}
		table.Render()
	}

	return nil
}
