package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/katalvlaran/coronas/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sandbox points config, database and output at a temp dir.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CORONAS_CONFIG", "")
	t.Setenv("CORONAS_DATABASE_PATH", filepath.Join(dir, "db", "coronas.db"))
	t.Setenv("CORONAS_OUTPUT_DIR", filepath.Join(dir, "out"))
	t.Setenv("CORONAS_LOG_LEVEL", "error")

	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

// TestRun_Usage checks help and unknown commands.
func TestRun_Usage(t *testing.T) {
	sandbox(t)

	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "enumerate")

	code, _, _ = runCLI(t, "help")
	assert.Equal(t, exitOK, code)

	code, _, stderr = runCLI(t, "enumerat")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `did you mean "enumerate"?`)

	code, _, stderr = runCLI(t, "zzzzzzzzz")
	assert.Equal(t, exitUsage, code)
	assert.NotContains(t, stderr, "did you mean")
}

// TestSuggest checks the edit-distance cutoff.
func TestSuggest(t *testing.T) {
	s, ok := suggest("valdate")
	assert.True(t, ok)
	assert.Equal(t, "validate", s)

	s, ok = suggest("run")
	assert.True(t, ok)
	assert.Equal(t, "runs", s)

	_, ok = suggest("completely-different")
	assert.False(t, ok)
}

// TestValidateCommand checks verdict lines and exit codes.
func TestValidateCommand(t *testing.T) {
	sandbox(t)

	code, out, _ := runCLI(t, "validate", "2|3^0|3^0|3^0|3^0", "2|1^0,2^1|1^0,2^1|1^0,2^1|1^0,2^1")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "2|3^0|3^0|3^0|3^0")

	code, out, _ = runCLI(t, "validate", "2|3^0|3^0|3^0|3^0", "2|1^0,2^1|1^0,2^1|1^0,4^1|1^0,4^1", "garbage")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, out, "1x1 corner gap with asymmetric edges (corner 0)")
	assert.Contains(t, out, "ERROR garbage")

	code, out, _ = runCLI(t, "validate", "-key", "1|4^0|2^0|2^0|3^0")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "2^0|2^0|3^0|4^0")

	code, _, _ = runCLI(t, "validate")
	assert.Equal(t, exitUsage, code)
}

// TestEnumerateCommand checks the listing, JSON output and the run catalogue.
func TestEnumerateCommand(t *testing.T) {
	dir := sandbox(t)

	code, out, stderr := runCLI(t, "enumerate", "-json", "-db", "-workers", "3")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "24 unique coronas with center = 1")
	assert.Contains(t, out, "(81 candidates, 81 valid)")
	assert.Contains(t, out, "  1. 1|2^0|2^0|2^0|2^0")
	assert.Contains(t, out, " 24. 1|4^0|4^0|4^0|4^0")

	run, err := persist.Load(filepath.Join(dir, "out", "coronas-center-1.json"))
	require.NoError(t, err)
	assert.Equal(t, 24, run.Count)

	id := regexp.MustCompile(`stored run ([0-9a-f-]{36})`).FindStringSubmatch(out)
	require.Len(t, id, 2, out)

	code, out, _ = runCLI(t, "runs")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, id[1])

	code, out, _ = runCLI(t, "runs", "show", id[1])
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "center=1 count=24 candidates=81 valid=81")

	exported := filepath.Join(dir, "export.json")
	code, _, _ = runCLI(t, "runs", "export", "-o", exported, id[1])
	assert.Equal(t, exitOK, code)
	doc, err := persist.Load(exported)
	require.NoError(t, err)
	assert.Equal(t, run.Coronas, doc.Coronas)

	code, _, _ = runCLI(t, "runs", "delete", id[1])
	assert.Equal(t, exitOK, code)
	code, _, stderr = runCLI(t, "runs", "show", id[1])
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "no run")

	code, out, _ = runCLI(t, "runs")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "no runs stored")
}

// TestEnumerateCommand_Errors checks unsupported centers and flag errors.
func TestEnumerateCommand_Errors(t *testing.T) {
	sandbox(t)

	code, _, stderr := runCLI(t, "enumerate", "-center", "2")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "only defined for center 1")

	code, _, _ = runCLI(t, "enumerate", "-nope")
	assert.Equal(t, exitUsage, code)
}

// TestRenderCommand checks PNG output and strict mode.
func TestRenderCommand(t *testing.T) {
	dir := sandbox(t)
	path := filepath.Join(dir, "c.png")

	code, out, stderr := runCLI(t, "render", "-o", path, "-unit", "8", "2|3^0|3^0|3^0|3^0")
	require.Equal(t, exitOK, code, stderr)
	assert.True(t, strings.Contains(out, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	code, _, stderr = runCLI(t, "render", "-strict", "-o", path, "2|2^0|2^0|2^0|2^0")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "center-sized aligned")

	code, _, stderr = runCLI(t, "render", "-o", path, "1|2^0|2^0|2^0|2^5000000")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "canvas too large")

	code, _, _ = runCLI(t, "render")
	assert.Equal(t, exitUsage, code)
}

// TestSubcommandHelp checks -h prints flag usage and exits cleanly.
func TestSubcommandHelp(t *testing.T) {
	sandbox(t)

	for _, args := range [][]string{
		{"enumerate", "-h"},
		{"validate", "-h"},
		{"render", "-h"},
		{"runs", "-h"},
		{"runs", "show", "-h"},
	} {
		code, _, stderr := runCLI(t, args...)
		assert.Equal(t, exitOK, code, "%v", args)
		assert.Contains(t, stderr, "Usage of", "%v", args)
	}

	code, _, _ := runCLI(t, "validate", "-nope")
	assert.Equal(t, exitUsage, code)
}
