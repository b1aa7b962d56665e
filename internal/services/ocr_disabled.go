//go:build !ocr

package services

import "errors"

type noOCR struct{}

// NewOCREngine returns an engine that is never available. Build with the
// "ocr" tag (and tesseract installed) to enable scanned-PDF recognition.
func NewOCREngine() OCREngine {
	return &noOCR{}
}

func (n *noOCR) Available() bool {
	return false
}

func (n *noOCR) Recognize(data []byte) (string, error) {
	return "", errors.New("OCR support not compiled in")
}
