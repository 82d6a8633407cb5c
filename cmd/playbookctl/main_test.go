package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fixturePath(name string) string {
	return filepath.Join("..", "..", "internal", "reports", "testdata", name)
}

// execute runs the root command. Flag values persist between runs, so every
// test passes the flags it depends on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["parse"])
	assert.True(t, names["render"])
}

func TestParse_JSON(t *testing.T) {
	out, err := execute(t, "parse", "--kind", "auto", "--format", "json", "--output", "", fixturePath("readiness_report.txt"))
	require.NoError(t, err)

	var got struct {
		Kind   string `json:"kind"`
		Record struct {
			OverallScore  int    `json:"overallScore"`
			MaturityLevel string `json:"maturityLevel"`
		} `json:"record"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "readiness", got.Kind)
	assert.Equal(t, 62, got.Record.OverallScore)
	assert.Equal(t, "Developing", got.Record.MaturityLevel)
}

func TestParse_YAML(t *testing.T) {
	out, err := execute(t, "parse", "--kind", "toolbox", "--format", "yaml", "--output", "", fixturePath("toolbox_report.txt"))
	require.NoError(t, err)

	var got struct {
		Kind   string `yaml:"kind"`
		Record struct {
			Industry         string `yaml:"industry"`
			RecommendedTools []struct {
				Name string `yaml:"name"`
			} `yaml:"recommendedTools"`
		} `yaml:"record"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "toolbox", got.Kind)
	assert.Equal(t, "Professional Services", got.Record.Industry)
	require.NotEmpty(t, got.Record.RecommendedTools)
	assert.Equal(t, "ChatGPT Team", got.Record.RecommendedTools[0].Name)
}

func TestParse_Errors(t *testing.T) {
	_, err := execute(t, "parse", "--kind", "invoice", "--format", "json", "--output", "", fixturePath("toolbox_report.txt"))
	assert.Error(t, err)

	_, err = execute(t, "parse", "--kind", "auto", "--format", "xml", "--output", "", fixturePath("toolbox_report.txt"))
	assert.Error(t, err)

	_, err = execute(t, "parse", "--kind", "auto", "--format", "json", "--output", "", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestRender_WritesDocx(t *testing.T) {
	out := filepath.Join(t.TempDir(), "acme.docx")
	_, err := execute(t, "render",
		"--readiness", fixturePath("readiness_report.txt"),
		"--toolbox", fixturePath("toolbox_report.txt"),
		"--company", "Acme Corp",
		"--reference", "",
		"--out", out,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}
