// Package ingestion turns uploaded resume files into plain text for skill
// extraction. Plain text and HTML are handled here; binary formats such as
// PDF are extracted by an upstream collaborator that satisfies Extractor.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extractor converts an uploaded file into plain text.
type Extractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

// ErrUnsupportedFormat indicates the uploaded file type cannot be converted
// to text by this extractor.
type ErrUnsupportedFormat struct {
	Extension string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported resume format: %q (supported: .txt, .md, .html)", e.Extension)
}

// TextExtractor handles plain-text and HTML resumes.
type TextExtractor struct{}

var _ Extractor = (*TextExtractor)(nil)

// ExtractText returns the textual content of the uploaded file. HTML is
// parsed and stripped of markup; plain text passes through cleaned.
func (TextExtractor) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".md", ".text", "":
		return CleanText(string(data)), nil
	case ".html", ".htm":
		text, err := htmlToText(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse HTML resume: %w", err)
		}
		return CleanText(text), nil
	default:
		return "", &ErrUnsupportedFormat{Extension: ext}
	}
}

// htmlToText extracts visible text from an HTML document.
func htmlToText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()

	body := doc.Find("body")
	if body.Length() > 0 {
		return body.Text(), nil
	}
	return doc.Text(), nil
}

var multiSpace = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes extracted text: line endings to LF, runs of spaces
// collapsed, blank-line runs reduced to one, surrounding whitespace trimmed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
