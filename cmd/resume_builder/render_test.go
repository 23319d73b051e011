package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_MissingInputFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "render")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"input\" not set")
}

func TestRenderCommand_InvalidInputFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cmd := exec.Command(binaryPath, "render",
		"--input", "/nonexistent/record.json",
		"--out", filepath.Join(tmpDir, "resume.pdf"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read input file")
}

func TestRenderCommand_SchemaViolation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "record.json")

	_ = os.WriteFile(inputFile, []byte(`{"experience": [{"title": "Engineer"}]}`), 0644)

	cmd := exec.Command(binaryPath, "render",
		"--input", inputFile,
		"--out", filepath.Join(tmpDir, "resume.pdf"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "company")
}

func TestRenderCommand_ValidInput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "record.json")
	outputFile := filepath.Join(tmpDir, "nested", "resume.pdf")

	record := `{
		"name": "Jane Doe",
		"title": "Software Engineer",
		"email": "jane@example.com",
		"skills": ["Python", "Go"]
	}`
	_ = os.WriteFile(inputFile, []byte(record), 0644)

	cmd := exec.Command(binaryPath, "render",
		"--input", inputFile,
		"--out", outputFile)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "Successfully rendered resume PDF")

	doc, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
}

func TestRenderCommand_PreviewMode(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "record.json")

	record := `{"name": "Jane Doe", "title": "Software Engineer", "skills": ["Go"]}`
	_ = os.WriteFile(inputFile, []byte(record), 0644)

	cmd := exec.Command(binaryPath, "render", "--input", inputFile, "--preview")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "### Jane Doe")
	assert.Contains(t, string(output), "**Skills**")
}
