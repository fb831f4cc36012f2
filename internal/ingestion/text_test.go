package ingestion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	var extractor TextExtractor

	text, err := extractor.ExtractText("resume.txt", []byte("Python developer.\r\nLoves   SQL."))
	require.NoError(t, err)
	assert.Equal(t, "Python developer.\nLoves SQL.", text)
}

func TestExtractText_Markdown(t *testing.T) {
	var extractor TextExtractor

	text, err := extractor.ExtractText("resume.md", []byte("# Skills\n\n\n\n- Python\n- Go"))
	require.NoError(t, err)
	assert.Equal(t, "# Skills\n\n- Python\n- Go", text)
}

func TestExtractText_HTML(t *testing.T) {
	var extractor TextExtractor
	html := `<html><head><style>body{color:red}</style></head>
<body><h1>Jane Doe</h1><p>Backend engineer using Python and Django.</p>
<script>console.log("tracking")</script></body></html>`

	text, err := extractor.ExtractText("resume.html", []byte(html))
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Python and Django")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "tracking")
}

func TestExtractText_HTMLFragment(t *testing.T) {
	var extractor TextExtractor

	text, err := extractor.ExtractText("snippet.htm", []byte("<p>Rust and Kafka</p>"))
	require.NoError(t, err)
	assert.Contains(t, text, "Rust and Kafka")
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	var extractor TextExtractor

	_, err := extractor.ExtractText("resume.pdf", []byte("%PDF-1.7"))
	require.Error(t, err)

	var unsupported *ErrUnsupportedFormat
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".pdf", unsupported.Extension)
}

func TestCleanText_BlankLineRuns(t *testing.T) {
	got := CleanText("a\n\n\n\n\nb")
	assert.Equal(t, "a\n\nb", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("  \n \t \n"))
}
