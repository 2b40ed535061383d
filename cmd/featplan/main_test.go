package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	runPath := filepath.Join(tmpDir, "run.yaml")
	content := `
ruleset: "1.0.0"
configurations:
  - name: fbn_8
    families: [morphology, histogram]
    steps:
      - name: resample
        params:
          spacing: [1.0, 1.0, 1.0]
      - name: discretise
        params:
          bins: 8
  - name: fbn_16
    families: [morphology, histogram]
    steps:
      - name: resample
        params:
          spacing: [1.0, 1.0, 1.0]
      - name: discretise
        params:
          bins: 16
`
	require.NoError(t, os.WriteFile(runPath, []byte(content), 0o600))

	os.Args = []string{"featplan", "plan", runPath}
	assert.Equal(t, 0, run())
}

func TestRun_MissingRunFile(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	os.Args = []string{"featplan", "plan", filepath.Join(t.TempDir(), "absent.yaml")}
	assert.Equal(t, 1, run())
}
