package extraction

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Image-PDF heuristic thresholds. Empirically tuned in the field; treat as
// approximate, not exact contracts.
const (
	// MinTextLength is the minimum extracted length below which a PDF is
	// suspected to be image-based.
	MinTextLength = 100
	// WeirdCharRatioThreshold is the tolerated ratio of characters outside
	// word characters, whitespace and common punctuation.
	WeirdCharRatioThreshold = 0.15
	// MinSectionKeywordHits is how many common resume section keywords must
	// appear before text is trusted as a real extraction.
	MinSectionKeywordHits = 2
)

var weirdCharPattern = regexp.MustCompile(`[^\w\s,.;:!?()\[\]{}'"-]`)

// sectionKeywordPatterns match the common resume section words checked by
// the image-PDF heuristic, as whole words.
var sectionKeywordPatterns = compileKeywordPatterns([]string{
	"experience", "education", "skills", "profile", "summary",
	"work", "project", "contact", "qualification",
})

func compileKeywordPatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		patterns[i] = regexp.MustCompile(`\b` + kw + `\b`)
	}
	return patterns
}

// extractPDF runs the PDF strategy chain: layout-aware conversion first,
// sequential per-page extraction as fallback, then OCR when the result looks
// like a scanned document.
func (e *Extractor) extractPDF(path string) (Result, error) {
	text, err := convertLayoutAware(path)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			e.log.Warn("layout-aware PDF extraction failed, trying per-page extraction",
				zap.String("path", path), zap.Error(err))
		}
		text, err = extractByPage(path)
		if err != nil {
			e.log.Warn("per-page PDF extraction failed",
				zap.String("path", path), zap.Error(err))
			text = ""
		}
	}

	if len(strings.TrimSpace(text)) < MinTextLength || AppearsImageBased(text) {
		if !e.ocrEnabled {
			e.log.Warn("PDF appears image-based but OCR is disabled",
				zap.String("path", path), zap.Int("chars", len(strings.TrimSpace(text))))
			return Result{Text: text}, nil
		}
		e.log.Info("PDF appears image-based, attempting OCR extraction",
			zap.String("path", path))
		ocrText, ocrErr := e.extractWithOCR(path)
		if ocrErr != nil {
			// OCR failure is non-fatal: return whatever text is available.
			e.log.Warn("OCR extraction failed", zap.String("path", path), zap.Error(ocrErr))
			return Result{Text: text}, nil
		}
		if strings.TrimSpace(ocrText) != "" {
			return Result{Text: ocrText, ViaOCR: true}, nil
		}
	}

	return Result{Text: text}, nil
}

// convertLayoutAware extracts PDF text preserving reading order across
// formatted layouts.
func convertLayoutAware(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	body, _, err := docconv.ConvertPDF(f)
	if err != nil {
		return "", fmt.Errorf("converting pdf: %w", err)
	}
	return body, nil
}

// extractByPage walks pages sequentially and concatenates their plain text.
func extractByPage(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// AppearsImageBased applies the text-quality heuristic for scanned PDFs:
// empty or very short text, a high ratio of unusual characters, or too few
// recognizable resume section keywords.
func AppearsImageBased(extracted string) bool {
	text := strings.TrimSpace(extracted)
	if text == "" {
		return true
	}
	if len(text) < MinTextLength {
		return true
	}

	weird := len(weirdCharPattern.FindAllString(text, -1))
	if float64(weird)/float64(len(text)) > WeirdCharRatioThreshold {
		return true
	}

	lower := strings.ToLower(text)
	hits := 0
	for _, pattern := range sectionKeywordPatterns {
		if pattern.MatchString(lower) {
			hits++
		}
	}
	return hits < MinSectionKeywordHits
}
