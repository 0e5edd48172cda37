// Package entities derives structured resume data (contact details, skills,
// experience, education, projects, certifications, summary) from plain text
// using section windowing, regex patterns and a gazetteer tagger.
package entities

import "regexp"

// Contact patterns.
var (
	emailPattern    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern    = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\d{10})`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[\w-]+`)
)

// Section header patterns. Matching happens against lowercased text.
var (
	educationHeaders     = regexp.MustCompile(`education|academic|qualification`)
	experienceHeaders    = regexp.MustCompile(`experience|employment|work history|career|professional`)
	skillsHeaders        = regexp.MustCompile(`skills|expertise|proficiency|competency|technical`)
	projectsHeaders      = regexp.MustCompile(`projects|portfolio|works`)
	summaryHeaders       = regexp.MustCompile(`summary|objective|profile|about`)
	certificationHeaders = regexp.MustCompile(`certifications|certificates|qualifications`)
)

const monthNames = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|` +
	`January|February|March|April|May|June|July|August|September|October|November|December`

// datePattern matches month-name ranges, M/YYYY ranges, YYYY ranges, and
// open ranges ending in present/current/now.
var datePattern = regexp.MustCompile(`(?i)(` + monthNames + `)[a-z]*\.?\s*\d{4}\s*(-|–|to)\s*(` + monthNames + `)[a-z]*\.?\s*\d{4}` +
	`|\d{1,2}/\d{4}\s*(-|–|to)\s*\d{1,2}/\d{4}` +
	`|\d{4}\s*(-|–|to)\s*\d{4}` +
	`|\d{4}\s*(-|–|to)\s*(present|current|now)`)

// entrySplitPattern separates section windows into entries on blank lines.
var entrySplitPattern = regexp.MustCompile(`\n\s*\n`)

// Bullet and numbering prefixes stripped from certification lines.
var (
	bulletPrefixPattern = regexp.MustCompile(`^[•\-*■●○►▶⦿⚫⚪✓✔✕✖✗✘]\s*`)
	numberPrefixPattern = regexp.MustCompile(`^\d+[.)]\s*`)
)
