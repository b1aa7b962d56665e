package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"hrtek/ats-checker/internal/models"
)

type ExtractorService interface {
	ExtractText(data []byte) (*models.ExtractedText, error)
}

type extractorService struct {
	ocr OCREngine
	// textLayer parses the PDF and returns the concatenated text layer.
	textLayer func(data []byte) (string, error)
}

// NewExtractorService builds the two-tier extractor: direct text-layer
// extraction first, OCR only when the text layer is empty. ocr may be nil
// when the deployment has no OCR support.
func NewExtractorService(ocr OCREngine) ExtractorService {
	return &extractorService{
		ocr:       ocr,
		textLayer: pdfTextLayer,
	}
}

// ExtractText implements ExtractorService.
func (e *extractorService) ExtractText(data []byte) (*models.ExtractedText, error) {
	text, err := e.textLayer(data)
	if err != nil {
		return nil, models.WrapFailure(
			models.FailCorruptPDF,
			"corrupted or password-protected PDF",
			err,
		)
	}

	text = strings.TrimSpace(text)
	method := models.MethodDirect

	if text == "" && e.ocr != nil && e.ocr.Available() {
		ocrText, err := e.ocr.Recognize(data)
		if err == nil {
			text = strings.TrimSpace(ocrText)
			method = models.MethodOCR
		}
	}

	if text == "" {
		return nil, models.NewFailure(models.FailEmptyDocument, "no text extracted")
	}

	return &models.ExtractedText{
		Text:   CleanText(text),
		Method: method,
	}, nil
}

// pdfTextLayer reads every page's text layer in document order. Pages whose
// text cannot be read are skipped rather than failing the document. The
// parser panics on some malformed documents, so recover into an error.
func pdfTextLayer(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parsing panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

// CleanText collapses blank lines and strips per-line whitespace.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
