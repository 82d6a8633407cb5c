package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, p)
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildPDF writes a single-page PDF per page text with a correct xref table.
func buildPDF(t *testing.T, pageTexts ...string) []byte {
	t.Helper()
	n := len(pageTexts)
	objects := make([]string, 0, 3+2*n)
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, n)
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objects = append(objects,
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	)
	for i, text := range pageTexts {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestTextFromBytes_PlainText(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("Overall AI Readiness Score: 55\n"), "text/plain; charset=utf-8", "report.txt")

	require.NoError(t, err)
	assert.Equal(t, "Overall AI Readiness Score: 55\n", text)
}

func TestTextFromBytes_SniffsTextWithoutMime(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("NEXT STEPS\n1. Go"), "", "")

	require.NoError(t, err)
	assert.Equal(t, "NEXT STEPS\n1. Go", text)
}

func TestTextFromBytes_Docx(t *testing.T) {
	data := buildDocx(t, "AI READINESS ASSESSMENT", "Maturity Level: Scaling")

	text, err := TextFromBytes(context.Background(), data, "application/octet-stream", "report.docx")

	require.NoError(t, err)
	assert.Equal(t, "AI READINESS ASSESSMENT\nMaturity Level: Scaling", text)
}

func TestTextFromBytes_ZipMimeDocxNormalizes(t *testing.T) {
	data := buildDocx(t, "hello")

	text, err := TextFromBytes(context.Background(), data, "application/zip", "upload")

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
	assert.Contains(t, err.Error(), "application/zip")
}

func TestTextFromBytes_Empty(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte(" \n\t"), "text/plain", "blank.txt")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestTextFromBytes_InvalidUTF8(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte{0xff, 0xfe, 0x41}, "text/plain", "bad.txt")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestTextFromBytes_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TextFromBytes(ctx, []byte("text"), "text/plain", "a.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPagesFromBytes_PDF(t *testing.T) {
	data := buildPDF(t, "First page", "Second page")

	pages, err := PagesFromBytes(context.Background(), data, "", "reference.pdf")

	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Contains(t, pages[0], "First page")
	assert.Contains(t, pages[1], "Second page")
}

func TestTextFromBytes_BrokenPDF(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte("%PDF-1.4\nnot really"), MimePDF, "broken.pdf")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedType))
	assert.True(t, errors.Is(err, ErrUnreadable))
}

func TestDetectType(t *testing.T) {
	docx := buildDocx(t, "x")
	tests := []struct {
		name     string
		mime     string
		fileName string
		data     []byte
		want     string
	}{
		{"declared pdf", "application/pdf", "", []byte("%PDF-1.7"), MimePDF},
		{"markdown", "text/markdown", "notes.md", []byte("# hi"), MimeText},
		{"extension wins over octet-stream", "application/octet-stream", "r.pdf", []byte("x"), MimePDF},
		{"sniffed pdf", "", "", []byte("%PDF-1.4\n"), MimePDF},
		{"sniffed docx", "", "", docx, MimeDOCX},
		{"image", "image/png", "logo.png", []byte("\x89PNG\r\n\x1a\n"), "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectType(tt.mime, tt.fileName, tt.data))
		})
	}
}
