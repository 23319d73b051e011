package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume record into a PDF",
	Long:  "Reads a resume record JSON file, validates it and renders a formatted PDF document.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
	renderPreview    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "input", "i", "", "Path to resume record JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "resume.pdf", "Path to output PDF file")
	renderCmd.Flags().BoolVar(&renderPreview, "preview", false, "Print a Markdown preview to stdout instead of writing a PDF")
	_ = renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateResumeRecord(data); err != nil {
		return err
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal resume record: %w", err)
	}
	if err := record.Validate(); err != nil {
		return err
	}

	if renderPreview {
		_, _ = fmt.Fprint(os.Stdout, preview.Markdown(&record))
		return nil
	}

	doc, err := render.PDF(&record)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	outputDir := filepath.Dir(renderOutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderOutputFile, doc, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered resume PDF\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)
	return nil
}
