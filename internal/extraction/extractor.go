package extraction

import (
	"strings"

	"go.uber.org/zap"
)

// Result is the output of text extraction. Text is never reported as a
// failure by this package: an empty string is a valid-but-degenerate result
// that the caller classifies, distinct from a returned error.
type Result struct {
	Text string
	// ViaOCR marks the text as OCR-derived, signaling reduced confidence.
	ViaOCR bool
}

// Options configures an Extractor.
type Options struct {
	// DisableOCR skips the OCR fallback for image-based PDFs.
	DisableOCR bool
}

// Extractor converts resume files into plain text, selecting a strategy per
// container format with fallback chains on failure.
type Extractor struct {
	ocrEnabled bool
	log        *zap.Logger
}

// NewExtractor builds an Extractor. A nil logger is replaced with a no-op.
func NewExtractor(log *zap.Logger, opts Options) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		ocrEnabled: !opts.DisableOCR,
		log:        log,
	}
}

// Extract returns the plain text of the file at path. The extension decides
// the strategy; extensions outside {pdf, docx, txt} fail with
// *UnsupportedFormatError. Extraction strategies themselves degrade rather
// than fail: a well-formed file never errors, it just may yield little text.
func (e *Extractor) Extract(path, extension string) (Result, error) {
	switch NormalizeExtension(extension) {
	case "pdf":
		return e.extractPDF(path)
	case "docx":
		text, err := e.extractDOCX(path)
		return Result{Text: text}, err
	case "txt":
		text, err := e.extractTXT(path)
		return Result{Text: text}, err
	default:
		return Result{}, &UnsupportedFormatError{Extension: extension}
	}
}

// NormalizeExtension lowercases an extension and strips a leading dot.
func NormalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}

// IsSupported reports whether the extension names a supported format.
func IsSupported(ext string) bool {
	switch NormalizeExtension(ext) {
	case "pdf", "docx", "txt":
		return true
	}
	return false
}
