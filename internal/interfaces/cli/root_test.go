package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "legalai.yaml")
	cfg := "models:\n  dir: " + filepath.Join(dir, "models") + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	return cfgPath
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGetCLIContextWithoutInit(t *testing.T) {
	cmd := NewRootCommand()
	_, err := GetCLIContext(cmd)
	assert.Error(t, err)
}

func TestAnalyzeShortInputFromStdin(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCommand(t, "short", "analyze", "-", "--config", cfgPath, "-o", "json")
	require.NoError(t, err)

	var analysis legal.DocumentAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.True(t, analysis.Degraded)
	assert.Equal(t, "Service Agreement", analysis.DocumentType)
	assert.Equal(t, 40, analysis.OverallRiskScore)
}

func TestAnalyzeFileTextOutput(t *testing.T) {
	cfgPath := writeTestConfig(t)

	docPath := filepath.Join(t.TempDir(), "doc.txt")
	doc := "This Service Agreement is between the Provider and the Client. " +
		"Either party may terminate this agreement with 30 days written notice. " +
		"The Client shall pay all fees within 30 days of invoice receipt thereof."
	require.NoError(t, os.WriteFile(docPath, []byte(doc), 0o644))

	out, err := runCommand(t, "", "analyze", docPath, "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Document Type:")
	assert.Contains(t, out, "Risk Score:")
	assert.Contains(t, out, "Recommendations:")
}

func TestAnalyzeMissingFile(t *testing.T) {
	cfgPath := writeTestConfig(t)
	_, err := runCommand(t, "", "analyze", "/nonexistent/doc.txt", "--config", cfgPath)
	assert.Error(t, err)
}

func TestTrainThenListModels(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCommand(t, "", "train", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "doc_type")
	assert.Contains(t, out, "clause_type")
	assert.Contains(t, out, "clause_risk")
	assert.Contains(t, out, "embedding")

	out, err = runCommand(t, "", "models", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "TASK")
	assert.Contains(t, out, "doc_type")
	assert.Contains(t, out, "embedding")
}

func TestModelsListEmptyStore(t *testing.T) {
	cfgPath := writeTestConfig(t)
	out, err := runCommand(t, "", "models", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "no artifacts stored")
}
