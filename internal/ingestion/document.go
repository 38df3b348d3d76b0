package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies how an uploaded document is decoded
type Format string

const (
	// FormatPDF is a PDF document
	FormatPDF Format = "pdf"
	// FormatDOCX is an Office Open XML word document
	FormatDOCX Format = "docx"
	// FormatText is anything else, decoded as UTF-8
	FormatText Format = "text"
)

// ErrUploadTooLarge is returned by ReadUpload when the input exceeds its limit
var ErrUploadTooLarge = errors.New("upload too large")

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:br\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// DetectFormat picks the decoder for a filename by its extension.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatText
	}
}

// ExtractText returns best-effort plain text for an uploaded document.
// PDF and DOCX are decoded by content; everything else is read as UTF-8 with
// invalid byte sequences dropped. Decoding failures yield an empty string.
func ExtractText(filename string, raw []byte) string {
	text, err := ExtractTextStrict(filename, raw)
	if err != nil {
		return ""
	}
	return text
}

// ExtractTextStrict is ExtractText but reports why a PDF or DOCX could not be decoded.
func ExtractTextStrict(filename string, raw []byte) (string, error) {
	switch DetectFormat(filename) {
	case FormatPDF:
		return extractPDFText(raw)
	case FormatDOCX:
		return extractDocxText(raw)
	default:
		return strings.ToValidUTF8(string(raw), ""), nil
	}
}

func extractPDFText(raw []byte) (text string, err error) {
	// the pdf reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

func extractDocxText(raw []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens WordprocessingML into one line per paragraph.
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	paragraphs := make([]string, 0)
	for _, p := range strings.Split(content, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n")
}

// ReadUpload reads at most limit bytes from r; larger inputs are rejected.
func ReadUpload(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: upload exceeds %d bytes", ErrUploadTooLarge, limit)
	}
	return data, nil
}
