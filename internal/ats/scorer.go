package ats

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/k5602/CV-Analayzer/internal/keywords"
	"github.com/k5602/CV-Analayzer/internal/types"
)

// Sub-score weights. The keyword weight only applies when a job description
// is supplied; without one the remaining weights are renormalized.
var (
	weightsWithJob = map[string]float64{
		"keyword_match": 0.4,
		"formatting":    0.3,
		"structure":     0.2,
		"file_type":     0.1,
	}
	weightsWithoutJob = map[string]float64{
		"keyword_match": 0,
		"formatting":    0.5,
		"structure":     0.3,
		"file_type":     0.2,
	}
)

// Suggestion thresholds per sub-score.
const (
	keywordSuggestionThreshold    = 60
	fileTypeSuggestionThreshold   = 70
	formattingSuggestionThreshold = 70
	structureSuggestionThreshold  = 70
)

// jobKeywordLimit caps how many job-description keywords are matched.
const jobKeywordLimit = 20

// expectedSectionCount is the number of canonical resume sections checked by
// the structure sub-score.
const expectedSectionCount = 5

// structureFeedbackPenaltyCap bounds the total per-feedback-item deduction.
const structureFeedbackPenaltyCap = 40

var (
	bulletGlyphPattern = regexp.MustCompile(`[•·‣⁃⦿⦾\-*✓✔➢➤]`)

	experienceHeaderPattern = regexp.MustCompile(`experience|employment|work history`)
	skillsHeaderPattern     = regexp.MustCompile(`skills|expertise|competencies`)
)

// Scorer computes ATS compatibility reports. It is safe for concurrent use:
// the rule set and keyword engine are read-only after construction.
type Scorer struct {
	rules  *RuleSet
	engine *keywords.Engine
	log    *zap.Logger
}

// NewScorer builds a Scorer over the given rule set and keyword engine.
// A nil rule set falls back to the built-in defaults; a nil logger to a no-op.
func NewScorer(rules *RuleSet, engine *keywords.Engine, log *zap.Logger) *Scorer {
	if rules == nil {
		rules = DefaultRules()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{rules: rules, engine: engine, log: log}
}

// Rules exposes the scorer's rule set, for platform listing.
func (s *Scorer) Rules() *RuleSet {
	return s.rules
}

// Score analyzes the resume against one platform's rules. An empty or
// whitespace-only job description means no keyword matching is performed and
// the no-job weight shape applies. Scoring is total: it never fails, it only
// produces lower scores and more feedback.
func (s *Scorer) Score(ctx context.Context, resume *types.ResumeEntities, jobDescription, platform string) *types.ATSReport {
	rule := s.rules.Resolve(platform)
	hasJob := strings.TrimSpace(jobDescription) != ""

	report := &types.ATSReport{
		Platform: rule.Name,
		KeywordMatch: types.KeywordMatch{
			MatchingKeywords: []string{},
			MissingKeywords:  []string{},
		},
		FormattingIssues:       []string{},
		StructureFeedback:      []string{},
		ImprovementSuggestions: []string{},
	}

	report.DetailedScores.FileType = fileTypeScore(resume.FileFormat, rule.ParsingRules.FilePreferences)

	formatting, issues := formattingScore(resume, rule.ParsingRules.FormattingPreferences)
	report.DetailedScores.Formatting = formatting
	report.FormattingIssues = issues

	structure, feedback := structureScore(resume, rule.ParsingRules.PreferredFormat)
	report.DetailedScores.Structure = structure
	report.StructureFeedback = feedback

	if hasJob {
		score, matching, missing := s.keywordMatchScore(ctx, resume, jobDescription, rule.ParsingRules.KeywordsImportance)
		report.DetailedScores.KeywordMatch = score
		report.KeywordMatch.Score = score
		report.KeywordMatch.MatchingKeywords = matching
		report.KeywordMatch.MissingKeywords = missing
	}

	weights := weightsWithoutJob
	if hasJob {
		weights = weightsWithJob
	}
	overall := float64(report.DetailedScores.KeywordMatch)*weights["keyword_match"] +
		float64(report.DetailedScores.Formatting)*weights["formatting"] +
		float64(report.DetailedScores.Structure)*weights["structure"] +
		float64(report.DetailedScores.FileType)*weights["file_type"]
	report.CompatibilityScore = int(math.Round(overall))

	report.ImprovementSuggestions = s.suggestions(report, rule, hasJob)

	s.log.Debug("ATS scoring complete",
		zap.String("platform", rule.Name),
		zap.Int("compatibility_score", report.CompatibilityScore),
		zap.Bool("job_description", hasJob))
	return report
}

// fileTypeScore ranks the document extension against the platform's format
// preference list. First-ranked formats score 100, last-ranked 60, with a
// flat penalty when the structural classifier flagged the file.
func fileTypeScore(format types.FileFormat, preferences []string) int {
	extension := strings.TrimPrefix(strings.ToLower(format.Extension), ".")
	if extension == "" {
		return 50
	}

	rank := -1
	for i, preferred := range preferences {
		if preferred == extension {
			rank = i
			break
		}
	}
	if rank < 0 {
		switch extension {
		case "pdf", "docx", "txt":
			return 50
		default:
			return 20
		}
	}

	denominator := len(preferences) - 1
	if denominator < 1 {
		denominator = 1
	}
	score := 100 - 40*float64(rank)/float64(denominator)
	if format.HasProblematicElements {
		score -= 30
	}
	return int(score)
}

// formattingScore collects formatting issues and deducts a fixed share of
// the score per issue.
func formattingScore(resume *types.ResumeEntities, prefs FormattingPreferences) (int, []string) {
	issues := []string{}

	if resume.FileFormat.HasProblematicElements {
		if !prefs.Tables {
			issues = append(issues, "Contains tables or complex formatting that may confuse ATS")
		}
		if !prefs.Images {
			issues = append(issues, "Contains images or graphics that ATS cannot parse")
		}
	}

	if prefs.BulletPoints && !bulletGlyphPattern.MatchString(resume.FullText) {
		issues = append(issues, "Lacks bullet points for better readability and parsing")
	}

	if !prefs.Columns && looksMultiColumn(resume.FullText) {
		issues = append(issues, "May contain multi-column layout which can confuse ATS parsing")
	}

	if len(issues) == 0 {
		return 100, issues
	}
	deduction := 100.0 / float64(flagCount+1)
	score := 100 - float64(len(issues))*deduction
	if score < 0 {
		score = 0
	}
	return int(score), issues
}

// looksMultiColumn detects column layouts in flattened text through the
// leading-whitespace histogram: a second common indentation level covering a
// large share of lines suggests side-by-side content.
func looksMultiColumn(text string) bool {
	lines := strings.Split(text, "\n")
	if len(lines) <= 10 {
		return false
	}

	counts := make(map[int]int)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		counts[len(line)-len(strings.TrimLeft(line, " \t"))]++
	}
	if len(counts) < 3 {
		return false
	}

	frequencies := make([]int, 0, len(counts))
	for _, c := range counts {
		frequencies = append(frequencies, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(frequencies)))
	return float64(frequencies[1]) > float64(len(lines))*0.15
}

// structureScore counts canonical sections present and penalizes each piece
// of structural feedback, with the total penalty capped.
func structureScore(resume *types.ResumeEntities, preferredFormat string) (int, []string) {
	feedback := []string{}
	found := 0

	if resume.ContactInfo.Name != "" {
		found++
	} else {
		feedback = append(feedback, "Missing or incomplete contact information")
	}
	if resume.Summary != "" {
		found++
	}
	if len(resume.Experience) > 0 {
		found++
	} else {
		feedback = append(feedback, "Missing work experience section")
	}
	if len(resume.Education) > 0 {
		found++
	} else {
		feedback = append(feedback, "Missing education section")
	}
	if len(resume.Skills) > 0 {
		found++
	} else {
		feedback = append(feedback, "Missing skills section")
	}

	if preferredFormat == "chronological" {
		lower := strings.ToLower(resume.FullText)
		expLoc := experienceHeaderPattern.FindStringIndex(lower)
		skillsLoc := skillsHeaderPattern.FindStringIndex(lower)
		if expLoc != nil && skillsLoc != nil && expLoc[0] > 0 && skillsLoc[0] > 0 && skillsLoc[0] < expLoc[0] {
			feedback = append(feedback, "For chronological format, work experience should come before skills section")
		}
	}

	sectionScore := float64(found) / float64(expectedSectionCount) * 100
	penalty := 10 * len(feedback)
	if penalty > structureFeedbackPenaltyCap {
		penalty = structureFeedbackPenaltyCap
	}
	score := int(sectionScore) - penalty
	if score < 0 {
		score = 0
	}
	return score, feedback
}

// keywordMatchScore extracts job-description keywords and checks each as a
// whole word against the resume text, applying the platform's importance
// modifier to the match percentage.
func (s *Scorer) keywordMatchScore(ctx context.Context, resume *types.ResumeEntities, jobDescription, importance string) (int, []string, []string) {
	jobKeywords := s.engine.ExtractKeyRequirements(ctx, jobDescription, jobKeywordLimit)

	resumeText := resume.FullText
	if resumeText == "" {
		parts := []string{resume.Summary}
		for _, exp := range resume.Experience {
			parts = append(parts, exp.Description)
		}
		parts = append(parts, resume.Skills...)
		resumeText = strings.Join(parts, " ")
	}
	resumeText = strings.ToLower(resumeText)

	matching := []string{}
	missing := []string{}
	for _, keyword := range jobKeywords {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`)
		if pattern.MatchString(resumeText) {
			matching = append(matching, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	if len(jobKeywords) == 0 {
		return 50, matching, missing
	}

	percentage := float64(len(matching)) / float64(len(jobKeywords)) * 100
	switch importance {
	case "high":
		if percentage < 30 {
			percentage *= 0.7
		}
	case "low":
		if percentage < 50 {
			percentage = percentage*0.8 + 20
		}
	}
	return int(percentage), matching, missing
}

// suggestions turns low sub-scores into concrete advice. A generic positive
// message is emitted only when nothing else fired.
func (s *Scorer) suggestions(report *types.ATSReport, rule PlatformRule, hasJob bool) []string {
	out := []string{}
	scores := report.DetailedScores

	if hasJob && scores.KeywordMatch < keywordSuggestionThreshold && len(report.KeywordMatch.MissingKeywords) > 0 {
		top := report.KeywordMatch.MissingKeywords
		if len(top) > 5 {
			top = top[:5]
		}
		out = append(out, fmt.Sprintf("Add these keywords from the job description: %s", strings.Join(top, ", ")))
	}

	if scores.FileType < fileTypeSuggestionThreshold && len(rule.ParsingRules.FilePreferences) > 0 {
		prefs := rule.ParsingRules.FilePreferences
		others := make([]string, 0, len(prefs)-1)
		for _, f := range prefs[1:] {
			others = append(others, strings.ToUpper(f))
		}
		out = append(out, fmt.Sprintf("Use a preferred file format: %s (other acceptable formats: %s).",
			strings.ToUpper(prefs[0]), strings.Join(others, ", ")))
	}

	if scores.Formatting < formattingSuggestionThreshold {
		for _, issue := range report.FormattingIssues {
			out = append(out, fmt.Sprintf("Fix formatting issue: %s", issue))
		}
		if len(rule.ParsingRules.RecommendedFonts) > 0 {
			out = append(out, fmt.Sprintf("Use ATS-friendly fonts: %s", strings.Join(rule.ParsingRules.RecommendedFonts, ", ")))
		}
	}

	if scores.Structure < structureSuggestionThreshold {
		out = append(out, report.StructureFeedback...)
		if len(rule.ParsingRules.SectionHeadings) > 0 {
			out = append(out, fmt.Sprintf("Use standard section headers in this order: %s",
				strings.Join(rule.ParsingRules.SectionHeadings, ", ")))
		}
	}

	if len(out) == 0 {
		out = append(out, "Your resume appears to be well-optimized for ATS systems. Continue to tailor it for specific job descriptions.")
		return out
	}

	out = append(out, "Ensure your resume has clear section headings and concise bullet points.")
	if rule.ParsingRules.PreferredFormat == "chronological" {
		out = append(out, "Use a chronological format with your most recent experience first.")
	}
	return out
}
