package ingestion

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"resume.pdf", FormatPDF},
		{"RESUME.PDF", FormatPDF},
		{"cv.docx", FormatDOCX},
		{"cv.DocX", FormatDOCX},
		{"notes.txt", FormatText},
		{"legacy.doc", FormatText},
		{"", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.filename))
		})
	}
}

func TestExtractText_PlainText(t *testing.T) {
	text := ExtractText("resume.txt", []byte("Jane Doe\njane@example.com"))
	assert.Equal(t, "Jane Doe\njane@example.com", text)
}

func TestExtractText_DropsInvalidUTF8(t *testing.T) {
	raw := []byte("Jane\xff\xfe Doe")
	assert.Equal(t, "Jane Doe", ExtractText("resume.txt", raw))
}

func TestExtractText_MalformedPDF(t *testing.T) {
	assert.Equal(t, "", ExtractText("resume.pdf", []byte("not a pdf")))

	_, err := ExtractTextStrict("resume.pdf", []byte("not a pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestExtractText_MalformedDOCX(t *testing.T) {
	assert.Equal(t, "", ExtractText("resume.docx", []byte("not a zip")))

	_, err := ExtractTextStrict("resume.docx", []byte("not a zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docx")
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>jane@example.com</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`<w:p><w:r><w:t>- Built ETL &amp; reporting</w:t></w:r><w:br/><w:r><w:t>in Python</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text := docxXMLToText(xml)
	assert.Equal(t, "Jane Doe\njane@example.com\n- Built ETL & reporting\nin Python", text)
}

func TestReadUpload(t *testing.T) {
	data, err := ReadUpload(bytes.NewReader([]byte("hello")), 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = ReadUpload(strings.NewReader("hello!"), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
	assert.ErrorIs(t, err, ErrUploadTooLarge)
}
