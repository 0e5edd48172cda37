// Package ats scores resumes for Applicant Tracking System compatibility
// against named platform rule sets.
package ats

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// DefaultPlatform is the rule set used when no platform is requested or the
// requested one is unknown.
const DefaultPlatform = "taleo"

// FormattingPreferences flags which document features a platform tolerates.
type FormattingPreferences struct {
	BulletPoints   bool `json:"bullet_points"`
	Tables         bool `json:"tables"`
	Images         bool `json:"images"`
	HeadersFooters bool `json:"headers_footers"`
	Columns        bool `json:"columns"`
	FancyFonts     bool `json:"fancy_fonts"`
}

// flagCount is the number of formatting preference flags, used for the
// per-issue deduction in the formatting sub-score.
const flagCount = 6

// ParsingRules describes how one ATS platform parses resumes.
type ParsingRules struct {
	PreferredFormat       string                `json:"preferred_format" validate:"omitempty,oneof=chronological functional hybrid"`
	SectionHeadings       []string              `json:"section_headings"`
	KeywordsImportance    string                `json:"keywords_importance" validate:"omitempty,oneof=high medium low"`
	FormattingPreferences FormattingPreferences `json:"formatting_preferences"`
	FilePreferences       []string              `json:"file_preferences" validate:"required,min=1,dive,oneof=pdf docx txt"`
	RecommendedFonts      []string              `json:"recommended_fonts"`
	SpecialNotes          string                `json:"special_notes"`
}

// PlatformRule is one named ATS platform's configuration. Rules are pure
// data; all behavior lives in the Scorer.
type PlatformRule struct {
	Name         string       `json:"name" validate:"required"`
	Description  string       `json:"description"`
	ParsingRules ParsingRules `json:"parsing_rules" validate:"required"`
}

// rulesSchema is the JSON Schema external rule files must satisfy before
// struct-level validation runs.
const rulesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "object",
    "required": ["name", "parsing_rules"],
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "parsing_rules": {
        "type": "object",
        "required": ["file_preferences"],
        "properties": {
          "preferred_format": {"type": "string"},
          "section_headings": {"type": "array", "items": {"type": "string"}},
          "keywords_importance": {"type": "string"},
          "formatting_preferences": {"type": "object"},
          "file_preferences": {"type": "array", "items": {"type": "string"}, "minItems": 1},
          "recommended_fonts": {"type": "array", "items": {"type": "string"}},
          "special_notes": {"type": "string"}
        }
      }
    }
  }
}`

// RuleSet is an immutable mapping of platform identifier to rule.
type RuleSet struct {
	platforms map[string]PlatformRule
}

// DefaultRules returns the built-in rule set, which always contains the
// default platform.
func DefaultRules() *RuleSet {
	return &RuleSet{platforms: map[string]PlatformRule{
		DefaultPlatform: {
			Name:        "Taleo",
			Description: "One of the most popular ATS, used by large corporations",
			ParsingRules: ParsingRules{
				PreferredFormat:    "chronological",
				SectionHeadings:    []string{"Education", "Experience", "Skills", "Projects"},
				KeywordsImportance: "high",
				FormattingPreferences: FormattingPreferences{
					BulletPoints: true,
				},
				FilePreferences:  []string{"pdf", "docx", "txt"},
				RecommendedFonts: []string{"Arial", "Times New Roman", "Calibri"},
				SpecialNotes:     "Emphasizes chronological work history and keywords matching job description",
			},
		},
	}}
}

// LoadRules reads platform rules from a JSON file, validating against the
// schema and struct constraints. The built-in default platform is added when
// the file does not define one.
func LoadRules(path string, log *zap.Logger) (*RuleSet, error) {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(rulesSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validating rules file: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("invalid rules file %s: %s", path, strings.Join(msgs, "; "))
	}

	var platforms map[string]PlatformRule
	if err := json.Unmarshal(data, &platforms); err != nil {
		return nil, fmt.Errorf("decoding rules file: %w", err)
	}

	validate := validator.New()
	for id, rule := range platforms {
		if err := validate.Struct(rule); err != nil {
			return nil, fmt.Errorf("invalid platform %q: %w", id, err)
		}
	}

	if _, ok := platforms[DefaultPlatform]; !ok {
		platforms[DefaultPlatform] = DefaultRules().platforms[DefaultPlatform]
	}

	log.Info("loaded ATS platform rules", zap.String("path", path), zap.Int("platforms", len(platforms)))
	return &RuleSet{platforms: platforms}, nil
}

// Resolve maps a requested platform identifier to a rule, falling back to
// the default for empty or unknown identifiers.
func (r *RuleSet) Resolve(platform string) PlatformRule {
	if rule, ok := r.platforms[strings.ToLower(strings.TrimSpace(platform))]; ok {
		return rule
	}
	return r.platforms[DefaultPlatform]
}

// Platforms returns the loaded platform identifiers, sorted.
func (r *RuleSet) Platforms() []string {
	ids := make([]string, 0, len(r.platforms))
	for id := range r.platforms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
