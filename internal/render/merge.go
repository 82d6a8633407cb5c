package render

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"playbook-backend/internal/extract"
)

// ErrReferenceFormat reports a reference document that cannot be combined
// with the personalized pages.
var ErrReferenceFormat = eris.New("unsupported reference document format")

var (
	bodyOpenPattern  = regexp.MustCompile(`<w:body(?:\s[^>]*)?>`)
	rootStartPattern = regexp.MustCompile(`<w:document\b[^>]*>`)
	xmlnsAttrPattern = regexp.MustCompile(`\s+xmlns(?::([A-Za-z0-9._-]+))?="([^"]+)"`)
)

// Reference is the static playbook placed after the personalized pages.
type Reference struct {
	Name string
	data []byte
}

// LoadReference reads the reference document at path. Only .docx, .pdf and
// .txt files are accepted.
func LoadReference(path string) (*Reference, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx", ".pdf", ".txt":
	default:
		return nil, eris.Wrapf(ErrReferenceFormat, "render: reference %s", path)
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, eris.Wrapf(err, "render: read reference %s", path)
	}
	return NewReference(filepath.Base(path), data), nil
}

// NewReference wraps an in-memory reference document. name decides how it is
// merged, by extension.
func NewReference(name string, data []byte) *Reference {
	return &Reference{Name: name, data: data}
}

// Compose packages doc as a DOCX file followed by ref. A nil ref yields the
// personalized pages alone. Text references are appended to doc itself.
func Compose(ctx context.Context, doc *Document, ref *Reference) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref == nil {
		return doc.Bytes()
	}
	switch strings.ToLower(filepath.Ext(ref.Name)) {
	case ".docx":
		return prependToDocx(doc, ref)
	case ".pdf", ".txt":
		return appendText(ctx, doc, ref)
	default:
		return nil, eris.Wrapf(ErrReferenceFormat, "render: reference %s", ref.Name)
	}
}

// prependToDocx rewrites the reference package with the personalized pages
// at the start of its body. Every other part is copied unchanged.
func prependToDocx(doc *Document, ref *Reference) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(ref.data), int64(len(ref.data)))
	if err != nil {
		return nil, eris.Wrapf(ErrReferenceFormat, "render: reference %s is not a docx: %v", ref.Name, err)
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	found := false
	for _, file := range reader.File {
		content, err := readZipFile(file)
		if err != nil {
			return nil, eris.Wrapf(err, "render: read %s", file.Name)
		}
		if normalizeZipName(file.Name) == "word/document.xml" {
			content, err = injectBody(content, doc.BodyXML()+pageBreakXML)
			if err != nil {
				return nil, eris.Wrapf(err, "render: reference %s", ref.Name)
			}
			found = true
		}
		if err := writeZipFile(writer, file, content); err != nil {
			return nil, eris.Wrapf(err, "render: write %s", file.Name)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, eris.Wrap(err, "render: close docx")
	}
	if !found {
		return nil, eris.Wrapf(ErrReferenceFormat, "render: reference %s has no word/document.xml", ref.Name)
	}
	return output.Bytes(), nil
}

// injectBody inserts fragment right after the opening w:body tag. The root
// element must bind the w prefix to the WordprocessingML namespace, since the
// fragment is written with that prefix.
func injectBody(documentXML []byte, fragment string) ([]byte, error) {
	root := rootStartPattern.Find(documentXML)
	if root == nil {
		return nil, eris.Wrap(ErrReferenceFormat, "w:document root not found")
	}
	if namespacesFromRootStart(string(root))["w"] != wmlNamespace {
		return nil, eris.Wrap(ErrReferenceFormat, "w prefix is not bound to the wordprocessingml namespace")
	}
	loc := bodyOpenPattern.FindIndex(documentXML)
	if loc == nil {
		return nil, eris.Wrap(ErrReferenceFormat, "w:body not found")
	}

	out := make([]byte, 0, len(documentXML)+len(fragment))
	out = append(out, documentXML[:loc[1]]...)
	out = append(out, fragment...)
	out = append(out, documentXML[loc[1]:]...)
	return out, nil
}

func namespacesFromRootStart(rootStart string) map[string]string {
	out := map[string]string{}
	for _, m := range xmlnsAttrPattern.FindAllStringSubmatch(rootStart, -1) {
		out[m[1]] = m[2]
	}
	return out
}

// appendText adds the reference text after the personalized pages, one page
// per source page.
func appendText(ctx context.Context, doc *Document, ref *Reference) ([]byte, error) {
	pages, err := extract.PagesFromBytes(ctx, ref.data, "", ref.Name)
	if err != nil {
		return nil, eris.Wrapf(err, "render: reference %s", ref.Name)
	}
	for _, page := range pages {
		doc.PageBreak()
		for _, line := range strings.Split(page, "\n") {
			if strings.TrimSpace(line) == "" {
				doc.Spacer()
				continue
			}
			doc.Paragraph("body", line)
		}
	}
	return doc.Bytes()
}
