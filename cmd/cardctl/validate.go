package main

import (
	"fmt"
	"os"

	"model-card-service/internal/card"
	"model-card-service/internal/core/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <card.md> [card.md...]",
	Short: "Validate model card files",
	Long:  "Check front-matter keys and required sections of one or more card files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			color.Red("FAIL  %s: %v", path, err)
			failed++
			continue
		}

		doc, err := card.Parse(data)
		if err != nil {
			color.Red("FAIL  %s: %v", path, err)
			failed++
			continue
		}

		findings := card.Lint(doc)
		if len(findings) == 0 {
			color.Green("PASS  %s", path)
			if lic := doc.Front.License; lic != "" && !domain.KnownLicenses[lic] {
				color.Yellow("      unrecognized license identifier %q", lic)
			}
			continue
		}

		color.Red("FAIL  %s", path)
		for _, f := range findings {
			fmt.Printf("      - %v\n", f)
		}
		failed++
	}

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
