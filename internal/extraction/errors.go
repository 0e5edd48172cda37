// Package extraction converts resume files (PDF, DOCX, TXT) into plain text,
// with an OCR fallback for image-based PDFs and a structural classifier for
// ATS-hostile layout elements.
package extraction

import "fmt"

// UnsupportedFormatError reports a file extension outside the supported set.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s (supported: pdf, docx, txt)", e.Extension)
}

// ExtractionError reports that no text could be recovered from any strategy.
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("text extraction failed for %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("text extraction failed for %s", e.Path)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
