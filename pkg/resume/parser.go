package resume

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for anything but pdf, docx and txt.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")

// ParseText extracts plain text from supported resume formats.
// Supports: .pdf, .docx and .txt
func ParseText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	case ".txt":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	xml := doc.Editable().GetContent()
	// Paragraph boundaries become newlines before tags are stripped.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

var (
	reTags   = regexp.MustCompile(`<[^>]+>`)
	reSpaces = regexp.MustCompile(`[ \t\r\f\v]+`)
	reLines  = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	// Preserve newlines but collapse runs
	s = reLines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
