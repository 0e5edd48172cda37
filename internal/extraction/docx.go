package extraction

import (
	"fmt"
	"os"

	"code.sajari.com/docconv"
)

// extractDOCX pulls the document body text out of a DOCX container.
func (e *Extractor) extractDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Cause: fmt.Errorf("opening docx: %w", err)}
	}
	defer f.Close()

	body, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", &ExtractionError{Path: path, Cause: fmt.Errorf("converting docx: %w", err)}
	}
	return body, nil
}
