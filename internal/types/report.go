package types

// DetailedScores holds the four independent ATS sub-scores, each 0-100.
type DetailedScores struct {
	KeywordMatch int `json:"keyword_match"`
	Formatting   int `json:"formatting"`
	Structure    int `json:"structure"`
	FileType     int `json:"file_type"`
}

// KeywordMatch reports whole-word keyword presence against a job description.
type KeywordMatch struct {
	Score            int      `json:"score"`
	MatchingKeywords []string `json:"matching_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
}

// ATSReport is the result of scoring a resume against one ATS platform's rules.
// CompatibilityScore is the weighted combination of the detailed sub-scores.
type ATSReport struct {
	Platform               string         `json:"ats_platform"`
	CompatibilityScore     int            `json:"compatibility_score"`
	DetailedScores         DetailedScores `json:"detailed_scores"`
	KeywordMatch           KeywordMatch   `json:"keyword_match"`
	FormattingIssues       []string       `json:"formatting_issues"`
	StructureFeedback      []string       `json:"structure_feedback"`
	ImprovementSuggestions []string       `json:"improvement_suggestions"`
}

// MatchReport is the result of measuring a resume against a job description.
// A nil *MatchReport means matching was not performed (no job description),
// which is a valid outcome rather than an error.
type MatchReport struct {
	OverallMatchPercentage    int      `json:"overall_match_percentage"`
	SkillMatchPercentage      int      `json:"skill_match_percentage"`
	ExperienceMatchPercentage int      `json:"experience_match_percentage"`
	EducationMatchPercentage  int      `json:"education_match_percentage"`
	SkillsMatchPercentage     int      `json:"skills_match_percentage"`
	SemanticSimilarity        float64  `json:"semantic_similarity"`
	KeywordMatchRatio         float64  `json:"keyword_match_ratio"`
	MatchingKeywords          []string `json:"matching_keywords"`
	MissingKeywords           []string `json:"missing_keywords"`
	ResumeUniqueKeywords      []string `json:"resume_unique_keywords"`
	KeyRequirements           []string `json:"key_requirements"`
	StrongMatches             []string `json:"strong_matches"`
	KeyGaps                   []string `json:"key_gaps"`
}

// ScoreSummary is the compact score block of an analysis result.
// Match percentages are pointers: nil when no job description was supplied.
type ScoreSummary struct {
	ATSCompatibility int  `json:"ats_compatibility"`
	OverallMatch     *int `json:"overall_match"`
	SkillsMatch      *int `json:"skills_match"`
	ExperienceMatch  *int `json:"experience_match"`
	EducationMatch   *int `json:"education_match"`
}

// AnalysisResult combines all outputs of one document's pipeline run.
type AnalysisResult struct {
	ID       string          `json:"id"`
	FilePath string          `json:"file_path"`
	FileName string          `json:"file_name"`
	Resume   *ResumeEntities `json:"resume_data"`
	ATS      *ATSReport      `json:"ats_analysis"`
	Match    *MatchReport    `json:"keyword_analysis,omitempty"`
	Scores   ScoreSummary    `json:"scores"`

	// OCRUsed is true when text extraction fell back to OCR; downstream
	// feedback should treat the extraction as degraded.
	OCRUsed bool `json:"ocr_used,omitempty"`
}

// maxSerializedKeywords caps keyword lists in the serialized form.
const maxSerializedKeywords = 20

// Serializable returns a copy suitable for persisting: the verbatim resume
// text is dropped and keyword lists are truncated.
func (a *AnalysisResult) Serializable() *AnalysisResult {
	out := *a
	if a.Resume != nil {
		resume := *a.Resume
		resume.FullText = ""
		out.Resume = &resume
	}
	if a.Match != nil {
		match := *a.Match
		match.MatchingKeywords = truncate(match.MatchingKeywords, maxSerializedKeywords)
		match.MissingKeywords = truncate(match.MissingKeywords, maxSerializedKeywords)
		match.ResumeUniqueKeywords = truncate(match.ResumeUniqueKeywords, maxSerializedKeywords)
		out.Match = &match
	}
	return &out
}

func truncate(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// AnalysisFailure is the structured failure payload for one document.
type AnalysisFailure struct {
	FilePath string `json:"file_path"`
	FileName string `json:"file_name"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Failure categories surfaced to callers.
const (
	FailureUnsupportedFormat = "unsupported_format"
	FailureExtraction        = "extraction_failure"
	FailureInternal          = "internal_error"
)

// BatchItem pairs one batch document with either its result or its failure.
type BatchItem struct {
	FilePath string           `json:"file_path"`
	FileName string           `json:"file_name"`
	Result   *AnalysisResult  `json:"analysis,omitempty"`
	Failure  *AnalysisFailure `json:"failure,omitempty"`
}
