package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

const (
	wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// Letter size with one inch margins, in twentieths of a point.
const sectionPropsXML = `<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>` +
	`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`

const pageBreakXML = `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
)

// run is a span of text sharing one style.
type run struct {
	style string
	text  string
}

// Document accumulates WordprocessingML paragraphs for the body of a DOCX
// package.
type Document struct {
	body       strings.Builder
	paragraphs int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Paragraph appends a left aligned paragraph. Line breaks in text are kept.
func (d *Document) Paragraph(style, text string) {
	d.writeParagraph(alignLeft, 0, run{style: style, text: text})
}

// Centered appends a centered paragraph.
func (d *Document) Centered(style, text string) {
	d.writeParagraph(alignCenter, 0, run{style: style, text: text})
}

// Bullet appends an indented bullet item.
func (d *Document) Bullet(style, text string) {
	d.writeParagraph(alignLeft, 360,
		run{style: "value", text: "• "},
		run{style: style, text: text},
	)
}

// Numbered appends an indented item prefixed with n.
func (d *Document) Numbered(n int, text string) {
	d.writeParagraph(alignLeft, 360,
		run{style: "value", text: strconv.Itoa(n) + ". "},
		run{style: "body", text: text},
	)
}

// Labeled appends "label value" as one paragraph with two runs.
func (d *Document) Labeled(label, value string) {
	d.writeParagraph(alignLeft, 0,
		run{style: "body", text: label + " "},
		run{style: "value", text: value},
	)
}

// Spacer appends an empty paragraph.
func (d *Document) Spacer() {
	d.body.WriteString(`<w:p/>`)
	d.paragraphs++
}

// PageBreak starts a new page.
func (d *Document) PageBreak() {
	d.body.WriteString(pageBreakXML)
	d.paragraphs++
}

// Len reports the number of paragraphs written so far.
func (d *Document) Len() int {
	return d.paragraphs
}

// BodyXML returns the paragraphs as a fragment for a w:body element. The
// fragment uses the w prefix for the WordprocessingML namespace.
func (d *Document) BodyXML() string {
	return d.body.String()
}

// Bytes packages the document as a standalone DOCX file.
func (d *Document) Bytes() ([]byte, error) {
	var out bytes.Buffer
	zw := zip.NewWriter(&out)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", d.documentXML()},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, eris.Wrapf(err, "render: create %s", p.name)
		}
		if _, err := io.WriteString(w, p.content); err != nil {
			return nil, eris.Wrapf(err, "render: write %s", p.name)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, eris.Wrap(err, "render: close docx")
	}
	return out.Bytes(), nil
}

func (d *Document) documentXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="` + wmlNamespace + `" xmlns:r="` + relNamespace + `"><w:body>`)
	b.WriteString(d.body.String())
	b.WriteString(sectionPropsXML)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func (d *Document) writeParagraph(align alignment, indent int, runs ...run) {
	b := &d.body
	b.WriteString(`<w:p>`)
	if indent > 0 || align == alignCenter {
		b.WriteString(`<w:pPr>`)
		if indent > 0 {
			b.WriteString(`<w:ind w:left="` + strconv.Itoa(indent) + `"/>`)
		}
		if align == alignCenter {
			b.WriteString(`<w:jc w:val="center"/>`)
		}
		b.WriteString(`</w:pPr>`)
	}
	for _, r := range runs {
		writeRun(b, StyleMap[r.style], r.text)
	}
	b.WriteString(`</w:p>`)
	d.paragraphs++
}

func writeRun(b *strings.Builder, style RunStyle, text string) {
	b.WriteString(`<w:r>`)
	if props := runProperties(style); props != "" {
		b.WriteString(`<w:rPr>` + props + `</w:rPr>`)
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString(`<w:br/>`)
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		_ = xml.EscapeText(b, []byte(line))
		b.WriteString(`</w:t>`)
	}
	b.WriteString(`</w:r>`)
}

func runProperties(style RunStyle) string {
	var b strings.Builder
	if style.Bold {
		b.WriteString(`<w:b/>`)
	}
	if style.Italic {
		b.WriteString(`<w:i/>`)
	}
	if style.Color != "" {
		b.WriteString(`<w:color w:val="` + style.Color + `"/>`)
	}
	if style.Size > 0 {
		b.WriteString(`<w:sz w:val="` + strconv.Itoa(style.Size) + `"/>`)
	}
	return b.String()
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func writeZipFile(writer *zip.Writer, source *zip.File, content []byte) error {
	header := source.FileHeader
	header.Name = normalizeZipName(source.Name)

	dst, err := writer.CreateHeader(&header)
	if err != nil {
		return err
	}
	_, err = dst.Write(content)
	return err
}

func normalizeZipName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}
