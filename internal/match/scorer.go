// Package match measures how well a resume aligns with a job description,
// blending semantic similarity with exact keyword overlap.
package match

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/k5602/CV-Analayzer/internal/keywords"
	"github.com/k5602/CV-Analayzer/internal/nlp"
	"github.com/k5602/CV-Analayzer/internal/types"
)

// Skill match blend: semantic similarity captures meaning beyond exact
// matches, so it carries the larger share.
const (
	semanticWeight = 0.7
	keywordWeight  = 0.3
)

// Overall match weights per section.
const (
	skillMatchWeight = 0.45
	experienceWeight = 0.25
	skillsWeight     = 0.20
	educationWeight  = 0.10
)

// requirementLimit is how many key requirements are extracted from the job
// description.
const requirementLimit = 10

// highlightLimit caps the strong-match and key-gap lists.
const highlightLimit = 5

// Scorer computes match reports. Safe for concurrent use: the similarity
// backend and keyword engine are read-only after construction.
type Scorer struct {
	sim    nlp.SimilarityBackend
	engine *keywords.Engine
	log    *zap.Logger
}

// NewScorer builds a match scorer over the given backend and engine.
func NewScorer(sim nlp.SimilarityBackend, engine *keywords.Engine, log *zap.Logger) *Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{sim: sim, engine: engine, log: log}
}

// Score measures the resume against the job description. An empty or
// whitespace-only description returns nil, meaning matching was not
// performed. Scoring never fails: degenerate inputs yield zero scores.
func (s *Scorer) Score(ctx context.Context, resume *types.ResumeEntities, jobDescription string) *types.MatchReport {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}

	resumeText := resume.FullText
	if resumeText == "" {
		resumeText = assembleResumeText(resume)
	}

	jobKeywords := s.engine.ExtractKeywords(jobDescription)
	resumeKeywords := s.engine.ExtractKeywords(resumeText)

	matching := intersection(resumeKeywords, jobKeywords)
	missing := difference(jobKeywords, resumeKeywords)
	unique := difference(resumeKeywords, jobKeywords)

	semantic := s.sim.Similarity(ctx, resumeText, jobDescription)

	denominator := len(jobKeywords)
	if denominator < 1 {
		denominator = 1
	}
	matchRatio := float64(len(matching)) / float64(denominator) * 100

	skillMatch := int(math.Round(semanticWeight*semantic + keywordWeight*matchRatio))

	experienceMatch := s.sim.Similarity(ctx, experienceText(resume), jobDescription)
	educationMatch := s.sim.Similarity(ctx, educationText(resume), jobDescription)
	skillsMatch := s.sim.Similarity(ctx, strings.Join(resume.Skills, " "), jobDescription)

	overall := int(math.Round(
		skillMatchWeight*float64(skillMatch) +
			experienceWeight*experienceMatch +
			skillsWeight*skillsMatch +
			educationWeight*educationMatch))

	requirements := s.engine.ExtractKeyRequirements(ctx, jobDescription, requirementLimit)

	strong := matching
	if len(strong) > highlightLimit {
		strong = strong[:highlightLimit]
	}
	gaps := []string{}
	for _, req := range requirements {
		if len(gaps) >= highlightLimit {
			break
		}
		if !contains(strong, req) {
			gaps = append(gaps, req)
		}
	}

	report := &types.MatchReport{
		OverallMatchPercentage:    overall,
		SkillMatchPercentage:      skillMatch,
		ExperienceMatchPercentage: int(math.Round(experienceMatch)),
		EducationMatchPercentage:  int(math.Round(educationMatch)),
		SkillsMatchPercentage:     int(math.Round(skillsMatch)),
		SemanticSimilarity:        math.Round(semantic*100) / 100,
		KeywordMatchRatio:         math.Round(matchRatio*100) / 100,
		MatchingKeywords:          matching,
		MissingKeywords:           missing,
		ResumeUniqueKeywords:      unique,
		KeyRequirements:           requirements,
		StrongMatches:             strong,
		KeyGaps:                   gaps,
	}

	s.log.Debug("match scoring complete",
		zap.Int("overall_match", overall),
		zap.Int("skill_match", skillMatch),
		zap.Int("matching_keywords", len(matching)))
	return report
}

// assembleResumeText joins section content when no full text is available.
func assembleResumeText(resume *types.ResumeEntities) string {
	parts := []string{resume.Summary}
	for _, exp := range resume.Experience {
		parts = append(parts, exp.Description)
	}
	parts = append(parts, resume.Skills...)
	for _, edu := range resume.Education {
		parts = append(parts, edu.Description)
	}
	for _, proj := range resume.Projects {
		parts = append(parts, proj.Description)
	}
	return strings.Join(parts, " ")
}

func experienceText(resume *types.ResumeEntities) string {
	parts := make([]string, 0, len(resume.Experience))
	for _, exp := range resume.Experience {
		parts = append(parts, exp.Title+" "+exp.Company+" "+exp.Description)
	}
	return strings.Join(parts, " ")
}

func educationText(resume *types.ResumeEntities) string {
	parts := make([]string, 0, len(resume.Education))
	for _, edu := range resume.Education {
		parts = append(parts, edu.Degree+" "+edu.Institution+" "+edu.Description)
	}
	return strings.Join(parts, " ")
}

func intersection(a, b map[string]struct{}) []string {
	out := []string{}
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func difference(a, b map[string]struct{}) []string {
	out := []string{}
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
