package entities

import (
	"strings"

	"github.com/k5602/CV-Analayzer/internal/types"
)

// nameLineLimit is how many leading lines are scanned for the candidate name.
const nameLineLimit = 3

// maxNameLength bounds a plausible name line.
const maxNameLength = 50

// locationScanLimit caps how much text the location tagger inspects.
const locationScanLimit = 1000

// extractContactInfo pulls name, email, phone, profile links and location
// out of the text. Fields with no match stay empty.
func (e *Extractor) extractContactInfo(text string) types.ContactInfo {
	contact := types.ContactInfo{}

	lines := strings.Split(text, "\n")
	if len(lines) > nameLineLimit {
		lines = lines[:nameLineLimit]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= maxNameLength {
			continue
		}
		if emailPattern.MatchString(line) || phonePattern.MatchString(line) || linkedinPattern.MatchString(line) {
			continue
		}
		contact.Name = line
		break
	}

	if m := emailPattern.FindString(text); m != "" {
		contact.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		contact.Phone = m
	}
	if m := linkedinPattern.FindString(text); m != "" {
		contact.LinkedIn = m
	}
	if m := githubPattern.FindString(text); m != "" {
		contact.GitHub = m
	}

	if e.tagger != nil {
		head := text
		if len(head) > locationScanLimit {
			head = head[:locationScanLimit]
		}
		if locs := e.tagger.Locations(head); len(locs) > 0 {
			contact.Location = locs[0]
		}
	}

	return contact
}
