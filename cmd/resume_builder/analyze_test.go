package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCommand_MissingFileArgument(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "arg")
}

func TestAnalyzeCommand_MissingAPIKey(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.txt")
	_ = os.WriteFile(resumeFile, []byte("Jane Doe, Software Engineer"), 0644)

	cmd := exec.Command(binaryPath, "analyze", resumeFile)
	cmd.Env = []string{"PATH=" + os.Getenv("PATH")}
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "Gemini API key is required")
}

func TestAnalyzeCommand_UnsupportedFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	notesFile := filepath.Join(tmpDir, "notes.xyz")
	_ = os.WriteFile(notesFile, []byte("whatever"), 0644)

	cmd := exec.Command(binaryPath, "analyze", "--api-key", "test-key", notesFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no extractable text")
}
