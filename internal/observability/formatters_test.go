package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestPrintAssessment_FullResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAssessment(&types.AtsAssessment{
		Score:        72,
		Highlights:   []string{"Clear structure"},
		Improvements: []string{"Add metrics", "Add keywords", "Shorten summary"},
		MatchingJobs: []string{"Data Analyst", "Backend Developer", "QA Engineer"},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS Score: 72 / 100")
	assert.Contains(t, out, "Data Analyst")
	assert.Contains(t, out, "Clear structure")
	assert.Contains(t, out, "Add metrics")
}

func TestPrintAssessment_SkipsEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAssessment(&types.AtsAssessment{Score: 40})

	out := buf.String()
	assert.Contains(t, out, "ATS Score: 40 / 100")
	assert.NotContains(t, out, "Highlights:")
	assert.NotContains(t, out, "Matching Jobs:")
}

func TestPrintAssessment_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAssessment(nil)
	assert.Empty(t, buf.String())
}

func TestPrintExtraction(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExtraction("resume.pdf", 1234)

	out := buf.String()
	assert.Contains(t, out, "resume.pdf")
	assert.Contains(t, out, "1234")
}
