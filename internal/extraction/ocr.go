package extraction

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// ocrDPI is the render resolution for OCR input. 300 DPI is the usual
// sweet spot for Tesseract accuracy on printed documents.
const ocrDPI = 300

// extractWithOCR renders each PDF page to an image and runs Tesseract over
// it. Per-page failures are skipped; the call fails only when no page yields
// text at all.
func (e *Extractor) extractWithOCR(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf for rendering: %w", err)
	}
	defer doc.Close()

	tmpDir, err := os.MkdirTemp("", "cv-analyzer-ocr-*")
	if err != nil {
		return "", fmt.Errorf("creating ocr scratch dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("configuring tesseract: %w", err)
	}

	var sb strings.Builder
	pages := 0
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := e.ocrPage(doc, client, tmpDir, n)
		if err != nil {
			e.log.Warn("OCR failed for page, skipping",
				zap.String("path", path), zap.Int("page", n+1), zap.Error(err))
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		if pages > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(pageText)
		pages++
	}

	if pages == 0 {
		return "", &ExtractionError{Path: path, Cause: fmt.Errorf("ocr recovered no text from %d pages", doc.NumPage())}
	}
	return sb.String(), nil
}

func (e *Extractor) ocrPage(doc *fitz.Document, client *gosseract.Client, tmpDir string, n int) (string, error) {
	img, err := doc.ImageDPI(n, ocrDPI)
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}

	imgPath := filepath.Join(tmpDir, fmt.Sprintf("page-%03d.png", n))
	f, err := os.Create(imgPath)
	if err != nil {
		return "", fmt.Errorf("creating page image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding page image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("flushing page image: %w", err)
	}

	if err := client.SetImage(imgPath); err != nil {
		return "", fmt.Errorf("loading page image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing page: %w", err)
	}
	return text, nil
}
