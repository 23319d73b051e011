package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/assess"
	"github.com/jonathan/resume-builder/internal/extract"
	"github.com/jonathan/resume-builder/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume file for ATS compatibility",
	Long:  "Extracts text from a PDF or plain-text resume file and obtains an ATS assessment from the Gemini API.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var analyzeAPIKey string

func init() {
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("Gemini API key is required: set --api-key or GEMINI_API_KEY")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	fileName := filepath.Base(filePath)
	text := extract.Text(data, fileName)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no extractable text in %s (supported: .pdf, .txt)", fileName)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintExtraction(fileName, len([]rune(text)))

	result, err := assess.Analyze(cmd.Context(), text, apiKey)
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	printer.PrintAssessment(result)
	return nil
}
