package services

// OCREngine recognizes text in a scanned PDF. OCR is deployment-optional:
// the tesseract-backed engine is compiled in with the "ocr" build tag and
// still reports unavailable when the rasterizer binary is missing.
type OCREngine interface {
	Available() bool
	Recognize(data []byte) (string, error)
}
