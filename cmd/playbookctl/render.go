package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"playbook-backend/internal/playbooks"
	"playbook-backend/internal/render"
	"playbook-backend/internal/shared/telemetry"
	"playbook-backend/internal/shared/util"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a personalized playbook from two report files",
	Long: `Render the personalized playbook pages from a readiness report and a
toolbox report, merged with the reference document when one is given.

Examples:
  playbookctl render --readiness readiness.txt --toolbox toolbox.pdf \
    --company "Acme Corp" --risk-tolerance Aggressive

  # Prepend to a reference playbook and choose the output path
  playbookctl render --readiness r.txt --toolbox t.txt \
    --reference reference.docx --out acme.docx`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.String("readiness", "", "AI readiness report file")
	f.String("toolbox", "", "AI toolbox report file")
	f.String("company", "", "company name (default \"Your Company\")")
	f.String("primary-driver", "", "primary driver")
	f.String("risk-tolerance", "", "risk tolerance")
	f.String("timeline", "", "implementation timeline")
	f.String("leadership", "", "implementation leadership")
	f.String("reference", "", "reference document (.docx, .pdf or .txt); defaults to REFERENCE_DOC_PATH")
	f.String("out", "", "output path (default <Company_Name>_AI_Playbook.docx)")
	_ = renderCmd.MarkFlagRequired("readiness")
	_ = renderCmd.MarkFlagRequired("toolbox")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	str := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}

	readiness, err := readUpload(str("readiness"))
	if err != nil {
		return err
	}
	toolbox, err := readUpload(str("toolbox"))
	if err != nil {
		return err
	}

	refPath := str("reference")
	if refPath == "" {
		refPath = cfg.ReferenceDocPath
	}
	var ref *render.Reference
	if refPath != "" {
		if ref, err = render.LoadReference(refPath); err != nil {
			return err
		}
	}

	req := playbooks.Request{
		CompanyName: str("company"),
		Profile: render.Profile{
			PrimaryDriver: str("primary-driver"),
			RiskTolerance: str("risk-tolerance"),
			Timeline:      str("timeline"),
			Leadership:    str("leadership"),
		},
		Readiness: readiness,
		Toolbox:   toolbox,
	}
	svc := &playbooks.Service{Reference: ref}
	data, err := svc.Render(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := str("out")
	if out == "" {
		out = util.DownloadName(req.CompanyName)
	}
	if err := withOutput(cmd, out, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}); err != nil {
		return err
	}

	telemetry.Info("playbook.rendered", map[string]any{"out": out, "bytes": len(data)})
	fmt.Fprintln(cmd.ErrOrStderr(), "wrote", out)
	return nil
}

func readUpload(path string) (playbooks.Upload, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return playbooks.Upload{}, eris.Wrapf(err, "read %s", path)
	}
	return playbooks.Upload{FileName: filepath.Base(path), Data: data}, nil
}
