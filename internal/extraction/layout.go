package extraction

import (
	"math"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Structural classification thresholds.
const (
	// maxColumnPositions is the number of distinct text x-start positions a
	// page may have before the layout is considered multi-column or tabular.
	maxColumnPositions = 15
	// imagePageRatio is the fraction of pages that must look image-heavy
	// before the whole document is flagged.
	imagePageRatio = 0.5
)

// indentedLinePattern matches text lines with deep leading whitespace, a
// fingerprint of column layouts once they are flattened to plain text.
var indentedLinePattern = regexp.MustCompile(`(?m)^[ \t]{8,}\S`)

// ClassifyLayout inspects a PDF for structural elements that commonly break
// ATS parsers: embedded images, and multi-column or table-like text
// placement. Classification is best-effort; unreadable files report no
// problematic elements.
func ClassifyLayout(path string) bool {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	imagePages := 0
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if pageHasImages(page) {
			imagePages++
		}
		if pageLooksColumnar(page) {
			return true
		}
	}

	total := reader.NumPage()
	return total > 0 && float64(imagePages)/float64(total) > imagePageRatio
}

// pageHasImages reports whether the page resource dictionary declares any
// XObject entries, which is where embedded images live.
func pageHasImages(page pdf.Page) bool {
	xobjects := page.V.Key("Resources").Key("XObject")
	return !xobjects.IsNull() && len(xobjects.Keys()) > 0
}

// pageLooksColumnar counts distinct x-start positions of text runs. Prose
// lines share a handful of left edges; columns and tables scatter them.
func pageLooksColumnar(page pdf.Page) bool {
	content := page.Content()
	starts := make(map[int]struct{})
	lastY := math.Inf(1)
	for _, t := range content.Text {
		// A new line begins when the y coordinate changes.
		if t.Y != lastY {
			starts[int(t.X)] = struct{}{}
			lastY = t.Y
		}
	}
	return len(starts) > maxColumnPositions
}

// TextLooksColumnar applies a plain-text fallback of the columnar check for
// formats where coordinates are unavailable: many deeply indented lines
// suggest a flattened multi-column layout.
func TextLooksColumnar(text string) bool {
	lines := strings.Count(text, "\n") + 1
	indented := len(indentedLinePattern.FindAllString(text, -1))
	return lines >= 10 && float64(indented)/float64(lines) > 0.3
}
