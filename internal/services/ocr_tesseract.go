//go:build ocr

package services

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

const (
	ocrDPI      = "300"
	ocrLanguage = "eng"
)

type tesseractOCR struct{}

func NewOCREngine() OCREngine {
	return &tesseractOCR{}
}

// Available implements OCREngine. Rasterization shells out to pdftoppm, so
// the engine is only usable when the binary is on PATH.
func (t *tesseractOCR) Available() bool {
	_, err := exec.LookPath("pdftoppm")
	return err == nil
}

// Recognize implements OCREngine: render each page to a 300 DPI raster and
// run tesseract over the pages in order, joined by newlines.
func (t *tesseractOCR) Recognize(data []byte) (string, error) {
	tmpDir, err := os.MkdirTemp("", "ats-ocr-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "document.pdf")
	if err := os.WriteFile(pdfPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write temp PDF: %w", err)
	}

	cmd := exec.Command("pdftoppm", "-png", "-r", ocrDPI, pdfPath, filepath.Join(tmpDir, "page"))
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w: %s", err, out)
	}

	pages, err := filepath.Glob(filepath.Join(tmpDir, "page-*.png"))
	if err != nil {
		return "", fmt.Errorf("failed to list rendered pages: %w", err)
	}
	sort.Strings(pages)

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(ocrLanguage); err != nil {
		return "", fmt.Errorf("failed to set OCR language: %w", err)
	}

	var parts []string
	for _, page := range pages {
		if err := client.SetImage(page); err != nil {
			return "", fmt.Errorf("failed to load page image: %w", err)
		}
		text, err := client.Text()
		if err != nil {
			return "", fmt.Errorf("OCR failed on %s: %w", filepath.Base(page), err)
		}
		parts = append(parts, text)
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
