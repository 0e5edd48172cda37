// Package analyzer orchestrates the per-document pipeline: text extraction,
// entity extraction, ATS scoring and optional job-description matching.
package analyzer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/k5602/CV-Analayzer/internal/ats"
	"github.com/k5602/CV-Analayzer/internal/config"
	"github.com/k5602/CV-Analayzer/internal/entities"
	"github.com/k5602/CV-Analayzer/internal/extraction"
	"github.com/k5602/CV-Analayzer/internal/keywords"
	"github.com/k5602/CV-Analayzer/internal/match"
	"github.com/k5602/CV-Analayzer/internal/nlp"
	"github.com/k5602/CV-Analayzer/internal/types"
)

// Analyzer runs the full analysis pipeline for resume documents. It is
// constructed once and safe for concurrent use: the similarity backend, rule
// set and dictionaries are resolved at construction and read-only afterward.
type Analyzer struct {
	extractor *extraction.Extractor
	entities  *entities.Extractor
	ats       *ats.Scorer
	match     *match.Scorer
	workers   int
	log       *zap.Logger
}

// New builds an Analyzer from configuration. The similarity backend is
// selected here, once; rules load from cfg.Rules when set, otherwise the
// built-in defaults apply.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*Analyzer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	rules := ats.DefaultRules()
	if cfg.Rules != "" {
		loaded, err := ats.LoadRules(cfg.Rules, log)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	sim := nlp.SelectBackend(ctx, nlp.BackendConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.EmbeddingURL,
		Model:   cfg.EmbeddingModel,
	}, log)
	engine := keywords.NewEngine(sim)

	return &Analyzer{
		extractor: extraction.NewExtractor(log, extraction.Options{DisableOCR: cfg.NoOCR}),
		entities:  entities.NewExtractor(nlp.NewTagger(), log),
		ats:       ats.NewScorer(rules, engine, log),
		match:     match.NewScorer(sim, engine, log),
		workers:   cfg.EffectiveWorkers(),
		log:       log,
	}, nil
}

// Platforms lists the loaded ATS platform identifiers.
func (a *Analyzer) Platforms() []string {
	return a.ats.Rules().Platforms()
}

// Analyze runs one document through the pipeline. Stages execute
// sequentially; a failure in extraction aborts the run, everything after
// extraction is total and only lowers scores.
func (a *Analyzer) Analyze(ctx context.Context, filePath, jobDescription, platform string) (*types.AnalysisResult, *types.AnalysisFailure) {
	fileName := filepath.Base(filePath)
	extension := filepath.Ext(filePath)

	a.log.Info("analyzing resume",
		zap.String("file", fileName),
		zap.Bool("job_description", strings.TrimSpace(jobDescription) != ""))

	extracted, err := a.extractor.Extract(filePath, extension)
	if err != nil {
		return nil, failureFor(filePath, fileName, err)
	}
	if strings.TrimSpace(extracted.Text) == "" {
		return nil, &types.AnalysisFailure{
			FilePath: filePath,
			FileName: fileName,
			Category: types.FailureExtraction,
			Message:  "no text could be extracted from the resume",
		}
	}

	resume := a.entities.Extract(extracted.Text)
	resume.FileFormat = types.FileFormat{
		Extension:              extraction.NormalizeExtension(extension),
		HasProblematicElements: a.classifyLayout(filePath, extension, extracted),
	}

	atsReport := a.ats.Score(ctx, resume, jobDescription, platform)
	matchReport := a.match.Score(ctx, resume, jobDescription)

	result := &types.AnalysisResult{
		ID:       uuid.NewString(),
		FilePath: filePath,
		FileName: fileName,
		Resume:   resume,
		ATS:      atsReport,
		Match:    matchReport,
		Scores:   summarize(atsReport, matchReport),
		OCRUsed:  extracted.ViaOCR,
	}
	return result, nil
}

// classifyLayout runs the structural classifier. PDFs get the coordinate
// based check against the file itself; other formats fall back to the
// flattened-text heuristic.
func (a *Analyzer) classifyLayout(filePath, extension string, extracted extraction.Result) bool {
	if extraction.NormalizeExtension(extension) == "pdf" {
		return extraction.ClassifyLayout(filePath)
	}
	return extraction.TextLooksColumnar(extracted.Text)
}

func summarize(atsReport *types.ATSReport, matchReport *types.MatchReport) types.ScoreSummary {
	summary := types.ScoreSummary{ATSCompatibility: atsReport.CompatibilityScore}
	if matchReport != nil {
		summary.OverallMatch = intPtr(matchReport.OverallMatchPercentage)
		summary.SkillsMatch = intPtr(matchReport.SkillsMatchPercentage)
		summary.ExperienceMatch = intPtr(matchReport.ExperienceMatchPercentage)
		summary.EducationMatch = intPtr(matchReport.EducationMatchPercentage)
	}
	return summary
}

func intPtr(v int) *int { return &v }

// failureFor maps an extraction error to its failure category.
func failureFor(filePath, fileName string, err error) *types.AnalysisFailure {
	category := types.FailureInternal
	var unsupported *extraction.UnsupportedFormatError
	var extractionErr *extraction.ExtractionError
	switch {
	case errors.As(err, &unsupported):
		category = types.FailureUnsupportedFormat
	case errors.As(err, &extractionErr):
		category = types.FailureExtraction
	}
	return &types.AnalysisFailure{
		FilePath: filePath,
		FileName: fileName,
		Category: category,
		Message:  err.Error(),
	}
}
