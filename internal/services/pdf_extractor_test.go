package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrtek/ats-checker/internal/models"
)

type fakeOCR struct {
	available bool
	text      string
	err       error
	calls     int
}

func (f *fakeOCR) Available() bool { return f.available }

func (f *fakeOCR) Recognize(data []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestExtractTextCorruptBytes(t *testing.T) {
	extractor := NewExtractorService(nil)

	_, err := extractor.ExtractText([]byte("this is not a pdf"))
	require.Error(t, err)

	failure, ok := models.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, models.FailCorruptPDF, failure.Kind)
}

func TestExtractTextDirectLayer(t *testing.T) {
	extractor := &extractorService{
		textLayer: func(data []byte) (string, error) {
			return "Page one text\n\nPage two text\n\n", nil
		},
	}

	extracted, err := extractor.ExtractText([]byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, models.MethodDirect, extracted.Method)
	assert.Equal(t, "Page one text\nPage two text", extracted.Text)
}

func TestExtractTextPreservesPageOrder(t *testing.T) {
	extractor := &extractorService{
		textLayer: func(data []byte) (string, error) {
			return "first page\n\nsecond page\n\nthird page\n\n", nil
		},
	}

	extracted, err := extractor.ExtractText([]byte("%PDF"))
	require.NoError(t, err)

	first := indexOf(t, extracted.Text, "first page")
	second := indexOf(t, extracted.Text, "second page")
	third := indexOf(t, extracted.Text, "third page")
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestExtractTextFallsBackToOCR(t *testing.T) {
	ocr := &fakeOCR{available: true, text: "Scanned resume text"}
	extractor := &extractorService{
		ocr: ocr,
		textLayer: func(data []byte) (string, error) {
			return "   \n  ", nil
		},
	}

	extracted, err := extractor.ExtractText([]byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, models.MethodOCR, extracted.Method)
	assert.Equal(t, "Scanned resume text", extracted.Text)
	assert.Equal(t, 1, ocr.calls)
}

func TestExtractTextSkipsOCRWhenTextLayerPresent(t *testing.T) {
	ocr := &fakeOCR{available: true, text: "should not be used"}
	extractor := &extractorService{
		ocr: ocr,
		textLayer: func(data []byte) (string, error) {
			return "native text", nil
		},
	}

	extracted, err := extractor.ExtractText([]byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, models.MethodDirect, extracted.Method)
	assert.Zero(t, ocr.calls)
}

func TestExtractTextEmptyWithoutOCR(t *testing.T) {
	extractor := &extractorService{
		textLayer: func(data []byte) (string, error) {
			return "", nil
		},
	}

	_, err := extractor.ExtractText([]byte("%PDF"))
	require.Error(t, err)

	failure, ok := models.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, models.FailEmptyDocument, failure.Kind)
}

func TestExtractTextEmptyWhenOCRUnavailable(t *testing.T) {
	extractor := &extractorService{
		ocr: &fakeOCR{available: false, text: "never seen"},
		textLayer: func(data []byte) (string, error) {
			return "", nil
		},
	}

	_, err := extractor.ExtractText([]byte("%PDF"))
	require.Error(t, err)

	failure, ok := models.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, models.FailEmptyDocument, failure.Kind)
}

func TestExtractTextEmptyWhenOCRYieldsNothing(t *testing.T) {
	extractor := &extractorService{
		ocr: &fakeOCR{available: true, text: "  \n "},
		textLayer: func(data []byte) (string, error) {
			return "", nil
		},
	}

	_, err := extractor.ExtractText([]byte("%PDF"))
	require.Error(t, err)

	failure, ok := models.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, models.FailEmptyDocument, failure.Kind)
}

func TestExtractTextOCRErrorTreatedAsEmpty(t *testing.T) {
	extractor := &extractorService{
		ocr: &fakeOCR{available: true, err: errors.New("tesseract exploded")},
		textLayer: func(data []byte) (string, error) {
			return "", nil
		},
	}

	_, err := extractor.ExtractText([]byte("%PDF"))
	require.Error(t, err)

	failure, ok := models.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, models.FailEmptyDocument, failure.Kind)
}

func TestExtractTextIdempotent(t *testing.T) {
	extractor := &extractorService{
		textLayer: func(data []byte) (string, error) {
			return "Stable resume content\n\n", nil
		},
	}

	document := []byte("%PDF identical bytes")

	first, err := extractor.ExtractText(document)
	require.NoError(t, err)
	second, err := extractor.ExtractText(document)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCleanText(t *testing.T) {
	input := "  Line one  \n\n\n   Line two\t\n\n"
	assert.Equal(t, "Line one\nLine two", CleanText(input))
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected %q in extracted text", needle)
	return idx
}
