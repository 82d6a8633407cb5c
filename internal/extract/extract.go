// Package extract pulls plain text out of uploaded report files.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
)

const (
	MimeText = "text/plain"
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrUnsupportedType = eris.New("unsupported file type")
	ErrEmpty           = eris.New("empty file")
	// ErrUnreadable marks a PDF or DOCX payload that could not be decoded.
	ErrUnreadable = eris.New("unreadable file")
)

// TextFromBytes extracts text from an in-memory payload. PDF pages are
// separated by a blank line.
func TextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	pages, err := PagesFromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n\n"), nil
}

// PagesFromBytes is TextFromBytes split by page. Text and DOCX payloads have
// no page structure and come back as a single page.
func PagesFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, eris.Wrapf(ErrEmpty, "extract %s", fileName)
	}

	detected := DetectType(mimeType, fileName, data)
	switch detected {
	case MimeText:
		text, err := plainText(data)
		if err != nil {
			return nil, eris.Wrapf(err, "extract %s", fileName)
		}
		return []string{text}, nil
	case MimePDF:
		pages, err := pdfPages(data)
		if err != nil {
			if eris.Is(err, ErrEmpty) {
				return nil, eris.Wrapf(err, "extract %s", fileName)
			}
			return nil, eris.Wrapf(ErrUnreadable, "extract %s: read pdf: %v", fileName, err)
		}
		return pages, nil
	case MimeDOCX:
		text, err := docxText(data)
		if err != nil {
			return nil, eris.Wrapf(ErrUnreadable, "extract %s: read docx: %v", fileName, err)
		}
		return []string{text}, nil
	default:
		return nil, eris.Wrapf(ErrUnsupportedType, "extract %s: mime type %q", fileName, detected)
	}
}

// DetectType resolves the effective MIME type of a payload from the declared
// type, the file extension and the content itself.
func DetectType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case MimeText, "text/markdown":
		return MimeText
	case MimePDF, MimeDOCX:
		return clean
	case "application/zip":
		if mapOOXMLFromZip(data) == MimeDOCX {
			return MimeDOCX
		}
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".md":
		return MimeText
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	}

	sniffed := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(sniffed, MimePDF):
		return MimePDF
	case strings.HasPrefix(sniffed, "application/zip"):
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
	case strings.HasPrefix(sniffed, "text/plain"):
		return MimeText
	}
	if clean != "" {
		return clean
	}
	return sniffed
}

func plainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", eris.Wrap(ErrUnsupportedType, "text is not valid UTF-8")
	}
	return string(data), nil
}

func pdfPages(data []byte) (pages []string, err error) {
	// The pdf reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, eris.Errorf("pdf reader panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	pages = make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, eris.Wrapf(err, "page %d", i)
		}
		pages = append(pages, strings.TrimSpace(text))
	}
	if len(pages) == 0 {
		return nil, ErrEmpty
	}
	return pages, nil
}

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", eris.New("word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return stripDocxXML(string(raw)), nil
}

// stripDocxXML keeps character data and turns paragraph, line break and tab
// elements into whitespace.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.StartElement:
			if t.Name.Local == "tab" {
				buf.WriteString("\t")
			}
		case xml.EndElement:
			if (t.Name.Local == "p" || t.Name.Local == "br") && buf.Len() > 0 {
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func mapOOXMLFromZip(data []byte) string {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		switch strings.ReplaceAll(f.Name, "\\", "/") {
		case "word/document.xml":
			return MimeDOCX
		case "xl/workbook.xml":
			return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		case "ppt/presentation.xml":
			return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
		}
	}
	return ""
}
