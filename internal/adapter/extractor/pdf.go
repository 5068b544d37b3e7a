// Package extractor turns uploaded documents into plain text.
package extractor

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"studydeck/internal/domain"

	pdf "github.com/ledongthuc/pdf"
)

var whitespacePattern = regexp.MustCompile(`[ \t]+`)

// PDFExtractor implements domain.TextExtractor for PDF uploads.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText extracts all text content from a PDF file. The upload is
// sniffed by magic bytes rather than trusting the claimed content type.
func (e *PDFExtractor) ExtractText(data []byte) (text string, err error) {
	// The pdf library panics on some malformed files instead of returning an
	// error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	if len(data) == 0 {
		return "", fmt.Errorf("empty file")
	}
	if !isPDF(data) {
		return "", fmt.Errorf("file is missing the %%PDF header")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}

	return collapseWhitespace(string(b)), nil
}

// isPDF reports whether the bytes start with the "%PDF-" magic header.
func isPDF(b []byte) bool {
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespacePattern.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var _ domain.TextExtractor = (*PDFExtractor)(nil)
