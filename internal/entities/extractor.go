package entities

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/k5602/CV-Analayzer/internal/keywords"
	"github.com/k5602/CV-Analayzer/internal/nlp"
	"github.com/k5602/CV-Analayzer/internal/types"
)

// minDictionarySkills is the threshold below which the noun-phrase tagger
// supplements dictionary matching.
const minDictionarySkills = 5

// maxSkillPhraseWords caps tagger-derived skill phrases.
const maxSkillPhraseWords = 3

// summaryLengthLimit truncates an overlong summary to its first paragraph.
const summaryLengthLimit = 500

// Certification lines outside this length range are discarded.
const (
	minCertificationLength = 6
	maxCertificationLength = 99
)

// Extractor turns resume text into structured entities. All extraction is
// heuristic and total: malformed sections produce empty results, never
// errors.
type Extractor struct {
	tagger *nlp.Tagger
	log    *zap.Logger
}

// NewExtractor builds an entity extractor. The tagger may be nil, which
// disables location detection and noun-phrase skill supplementation. A nil
// logger is replaced with a no-op.
func NewExtractor(tagger *nlp.Tagger, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{tagger: tagger, log: log}
}

// Extract derives all entity groups from the text. The returned record has
// non-nil collections and retains the full text for downstream scoring.
func (e *Extractor) Extract(text string) *types.ResumeEntities {
	result := types.NewResumeEntities()
	result.FullText = text

	result.ContactInfo = e.extractContactInfo(text)
	result.Skills = e.extractSkills(text)
	result.Experience = e.extractExperience(text)
	result.Education = e.extractEducation(text)
	result.Projects = e.extractProjects(text)
	result.Certifications = e.extractCertifications(text)
	result.Summary = e.extractSummary(text)

	e.log.Debug("entity extraction complete",
		zap.Int("skills", len(result.Skills)),
		zap.Int("experience_entries", len(result.Experience)),
		zap.Int("education_entries", len(result.Education)),
		zap.Int("projects", len(result.Projects)))
	return result
}

// extractSkills matches the skill dictionary against the skills section when
// one is found, the whole text otherwise. When few dictionary skills match,
// tagger noun phrases supplement the result.
func (e *Extractor) extractSkills(text string) []string {
	lower := strings.ToLower(text)

	searchText, ok := skillsWindow(lower)
	if !ok {
		searchText = lower
	}

	skills := keywords.DictionarySkills(searchText)

	if e.tagger != nil && len(skills) < minDictionarySkills {
		seen := make(map[string]struct{}, len(skills))
		for _, s := range skills {
			seen[s] = struct{}{}
		}
		for _, phrase := range e.tagger.NounPhrases(text) {
			normalized := strings.ToLower(phrase)
			if len(strings.Fields(normalized)) > maxSkillPhraseWords {
				continue
			}
			if e.tagger.IsPersonName(phrase) {
				continue
			}
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}
			skills = append(skills, normalized)
		}
	}

	sort.Strings(skills)
	return skills
}

// extractExperience windows the experience section and parses blank-line
// separated entries into title, company, date range and description.
func (e *Extractor) extractExperience(text string) []types.Experience {
	lower := strings.ToLower(text)
	boundaries := []*regexp.Regexp{educationHeaders, skillsHeaders, projectsHeaders, certificationHeaders}
	start, end, ok := sectionWindow(lower, experienceHeaders, boundaries)
	if !ok {
		return []types.Experience{}
	}

	experiences := []types.Experience{}
	for _, entry := range sectionEntries(text[start:end]) {
		exp := types.Experience{Description: entry}
		if m := datePattern.FindString(entry); m != "" {
			exp.DateRange = strings.TrimSpace(m)
		}

		lines := strings.Split(entry, "\n")
		if len(lines) >= 2 {
			first := strings.TrimSpace(lines[0])
			firstLower := strings.ToLower(first)
			switch {
			case strings.Contains(first, ","):
				parts := strings.SplitN(first, ",", 2)
				exp.Title = strings.TrimSpace(parts[0])
				exp.Company = strings.TrimSpace(parts[1])
			case strings.Contains(firstLower, " at "):
				idx := strings.Index(firstLower, " at ")
				exp.Title = strings.TrimSpace(first[:idx])
				exp.Company = strings.TrimSpace(first[idx+4:])
			default:
				exp.Title = first
				if len(lines) >= 3 {
					exp.Company = strings.TrimSpace(lines[1])
				}
			}
		}
		experiences = append(experiences, exp)
	}
	return experiences
}

// extractEducation windows the education section and parses entries, using
// degree keywords over the first two lines and a university/college check
// for the institution.
func (e *Extractor) extractEducation(text string) []types.Education {
	lower := strings.ToLower(text)
	boundaries := []*regexp.Regexp{experienceHeaders, skillsHeaders, projectsHeaders, certificationHeaders}
	start, end, ok := sectionWindow(lower, educationHeaders, boundaries)
	if !ok {
		return []types.Education{}
	}

	degreeKeywords := []string{"bachelor", "master", "phd", "doctorate", "bs", "ba", "ms", "ma", "mba"}

	education := []types.Education{}
	for _, entry := range sectionEntries(text[start:end]) {
		edu := types.Education{Description: entry}
		if m := datePattern.FindString(entry); m != "" {
			edu.DateRange = strings.TrimSpace(m)
		}

		lines := strings.Split(entry, "\n")
		headLines := lines
		if len(headLines) > 2 {
			headLines = headLines[:2]
		}
		for _, line := range headLines {
			lineLower := strings.ToLower(line)
			if containsAnyWord(lineLower, degreeKeywords) {
				edu.Degree = strings.TrimSpace(line)
				if len(lines) > 1 && isInstitutionLine(lines[1]) {
					edu.Institution = strings.TrimSpace(lines[1])
				}
				break
			}
		}
		if edu.Degree == "" && edu.Institution == "" {
			for _, line := range headLines {
				if isInstitutionLine(line) {
					edu.Institution = strings.TrimSpace(line)
					break
				}
			}
		}
		education = append(education, edu)
	}
	return education
}

// extractProjects windows the projects section; each entry takes its first
// line as the name and collects dictionary skills as technologies.
func (e *Extractor) extractProjects(text string) []types.Project {
	lower := strings.ToLower(text)
	boundaries := []*regexp.Regexp{experienceHeaders, educationHeaders, skillsHeaders, certificationHeaders}
	start, end, ok := sectionWindow(lower, projectsHeaders, boundaries)
	if !ok {
		return []types.Project{}
	}

	projects := []types.Project{}
	for _, entry := range sectionEntries(text[start:end]) {
		project := types.Project{
			Description:  entry,
			Technologies: keywords.DictionarySkills(strings.ToLower(entry)),
		}
		sort.Strings(project.Technologies)
		if lines := strings.Split(entry, "\n"); len(lines) > 0 {
			project.Name = strings.TrimSpace(lines[0])
		}
		projects = append(projects, project)
	}
	return projects
}

// extractCertifications windows the certifications section and keeps
// bullet-stripped lines of plausible certification-name length.
func (e *Extractor) extractCertifications(text string) []string {
	lower := strings.ToLower(text)
	boundaries := []*regexp.Regexp{experienceHeaders, educationHeaders, skillsHeaders, projectsHeaders}
	start, end, ok := sectionWindow(lower, certificationHeaders, boundaries)
	if !ok {
		return []string{}
	}

	certifications := []string{}
	lines := strings.Split(text[start:end], "\n")
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		line = bulletPrefixPattern.ReplaceAllString(line, "")
		line = numberPrefixPattern.ReplaceAllString(line, "")
		if len(line) >= minCertificationLength && len(line) <= maxCertificationLength {
			certifications = append(certifications, line)
		}
	}
	return certifications
}

// extractSummary returns the text between the summary header and the next
// section, truncated to its first paragraph when overlong. Without a summary
// header the document's first paragraph stands in.
func (e *Extractor) extractSummary(text string) string {
	lower := strings.ToLower(text)
	loc := summaryHeaders.FindStringIndex(lower)
	if loc == nil {
		return firstParagraph(text)
	}
	start := loc[1]

	end := len(text)
	boundaries := []*regexp.Regexp{experienceHeaders, educationHeaders, skillsHeaders, projectsHeaders}
	for _, boundary := range boundaries {
		if m := boundary.FindStringIndex(lower[start:]); m != nil && start+m[0] < end {
			end = start + m[0]
		}
	}

	summary := strings.TrimSpace(text[start:end])
	if len(summary) > summaryLengthLimit {
		if paraEnd := strings.Index(summary, "\n\n"); paraEnd > 0 {
			summary = strings.TrimSpace(summary[:paraEnd])
		}
	}
	return summary
}

// firstParagraph returns the leading blank-line-delimited paragraph, trimmed.
func firstParagraph(text string) string {
	trimmed := strings.TrimSpace(text)
	if m := entrySplitPattern.FindStringIndex(trimmed); m != nil {
		trimmed = trimmed[:m[0]]
	}
	return strings.TrimSpace(trimmed)
}

func containsAnyWord(line string, words []string) bool {
	for _, w := range words {
		if strings.Contains(line, w) {
			return true
		}
	}
	return false
}

func isInstitutionLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "university") || strings.Contains(lower, "college")
}
