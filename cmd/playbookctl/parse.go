package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"playbook-backend/internal/extract"
	"playbook-backend/internal/reports"
)

var parseCmd = &cobra.Command{
	Use:   "parse <report-file>",
	Short: "Parse a report file into its structured record",
	Long: `Parse an AI readiness or AI toolbox report (.txt, .pdf or .docx) and print
the structured record.

Examples:
  # Detect the report kind from its content
  playbookctl parse readiness.txt

  # Force the toolbox parser and print YAML
  playbookctl parse --kind toolbox --format yaml toolbox.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	f := parseCmd.Flags()
	f.String("kind", "auto", "report kind: auto, readiness or toolbox")
	f.String("format", "json", "output format: json or yaml")
	f.String("output", "", "output file path (default: stdout)")

	rootCmd.AddCommand(parseCmd)
}

type parseOutput struct {
	Kind   reports.Kind   `json:"kind" yaml:"kind"`
	Record reports.Record `json:"record" yaml:"record"`
}

func runParse(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	kind, err := reports.ParseKind(kindFlag)
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return eris.Wrapf(err, "read %s", path)
	}
	text, err := extract.TextFromBytes(cmd.Context(), data, "", path)
	if err != nil {
		return err
	}
	record, err := reports.Parse(text, kind)
	if err != nil {
		return err
	}

	return withOutput(cmd, output, func(w io.Writer) error {
		return encode(w, format, parseOutput{Kind: record.Kind(), Record: record})
	})
}

func encode(w io.Writer, format string, v any) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return eris.Errorf("unsupported format %q (want json or yaml)", format)
	}
}

// withOutput runs fn against the named file, or the command's stdout when
// path is empty.
func withOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return eris.Wrapf(err, "create %s", path)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
