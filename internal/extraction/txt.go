package extraction

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// legacyEncodings are tried in order when a text file is not valid UTF-8.
var legacyEncodings = []encoding.Encoding{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// extractTXT reads a plain text file, decoding legacy single-byte encodings
// when the content is not valid UTF-8.
func (e *Extractor) extractTXT(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Cause: fmt.Errorf("reading text file: %w", err)}
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	for _, enc := range legacyEncodings {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err == nil && utf8.Valid(decoded) {
			return string(decoded), nil
		}
	}

	// Windows-1252 maps every byte, so decoding above cannot fail; this is
	// only reached for exotic inputs.
	return string(raw), nil
}
