package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k5602/CV-Analayzer/internal/config"
	"github.com/k5602/CV-Analayzer/internal/types"
)

func TestLoadJobDescription(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("python engineer"), 0o644))

	jd, err := loadJobDescription("", jobPath)
	require.NoError(t, err)
	assert.Equal(t, "python engineer", jd)

	jd, err = loadJobDescription("inline text", "")
	require.NoError(t, err)
	assert.Equal(t, "inline text", jd)

	jd, err = loadJobDescription("", "")
	require.NoError(t, err)
	assert.Empty(t, jd)

	_, err = loadJobDescription("inline", jobPath)
	assert.Error(t, err)

	_, err = loadJobDescription("", "/nonexistent/job.txt")
	assert.Error(t, err)
}

func TestLoadJobDescription_WhitespaceOnly(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("  \n\t "), 0o644))

	jd, err := loadJobDescription("", jobPath)
	require.NoError(t, err)
	assert.Empty(t, jd)
}

func TestResolveConfig_MergesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"platform": "taleo", "workers": 2}`), 0o644))

	cfg, err := resolveConfig(config.Config{Platform: "greenhouse"}, path)
	require.NoError(t, err)

	// Flag value wins over file value.
	assert.Equal(t, "greenhouse", cfg.Platform)
	assert.Equal(t, 2, cfg.Workers)
}

func TestCollectResumeFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.txt", "c.docx", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	paths, err := collectResumeFiles(dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "a.txt"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.pdf"), paths[1])
	assert.Equal(t, filepath.Join(dir, "c.docx"), paths[2])
}

func TestBatchReport(t *testing.T) {
	items := []types.BatchItem{
		{FilePath: "a.txt", Result: &types.AnalysisResult{}},
		{FilePath: "b.txt", Failure: &types.AnalysisFailure{Category: types.FailureExtraction}},
	}

	summary := batchReport(items)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
}
