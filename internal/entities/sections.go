package entities

import (
	"regexp"
	"strings"
)

// skillsHeaderSkip is how far past a skills header the boundary scan starts,
// so the header itself is not mistaken for the next section.
const skillsHeaderSkip = 10

// minEntryLength filters out header remnants and stray blank-line fragments
// when a section window is split into entries.
const minEntryLength = 10

// sectionWindow locates the named section in lowercased text and returns the
// [start, end) byte range of its window. The window runs from the first
// header match to the earliest match of any boundary pattern after it, or to
// the end of the text.
func sectionWindow(lower string, header *regexp.Regexp, boundaries []*regexp.Regexp) (int, int, bool) {
	loc := header.FindStringIndex(lower)
	if loc == nil {
		return 0, 0, false
	}
	start := loc[0]
	end := len(lower)
	for _, boundary := range boundaries {
		if m := boundary.FindStringIndex(lower[start:]); m != nil && start+m[0] < end {
			end = start + m[0]
		}
	}
	return start, end, true
}

// skillsWindow is the skills-section variant: the boundary scan skips a few
// bytes past the header because boundary patterns share words with common
// skills-header phrasings.
func skillsWindow(lower string) (string, bool) {
	loc := skillsHeaders.FindStringIndex(lower)
	if loc == nil {
		return "", false
	}
	start := loc[0]
	scanFrom := start + skillsHeaderSkip
	if scanFrom > len(lower) {
		scanFrom = len(lower)
	}

	end := len(lower)
	boundaries := []*regexp.Regexp{experienceHeaders, educationHeaders, projectsHeaders, summaryHeaders}
	for _, boundary := range boundaries {
		if m := boundary.FindStringIndex(lower[scanFrom:]); m != nil && scanFrom+m[0] < end {
			end = scanFrom + m[0]
		}
	}
	return lower[start:end], true
}

// sectionEntries splits a section window on blank lines, dropping the header
// line and entries too short to carry information. The first chunk opens with
// the header itself; when no blank line follows the header, the first entry
// shares that chunk, so only the header line is stripped from it.
func sectionEntries(window string) []string {
	parts := entrySplitPattern.Split(window, -1)
	if len(parts) == 0 {
		return nil
	}
	entries := make([]string, 0, len(parts))
	if _, rest, found := strings.Cut(parts[0], "\n"); found {
		if trimmed := strings.TrimSpace(rest); len(trimmed) >= minEntryLength {
			entries = append(entries, trimmed)
		}
	}
	for _, part := range parts[1:] {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) < minEntryLength {
			continue
		}
		entries = append(entries, trimmed)
	}
	return entries
}
