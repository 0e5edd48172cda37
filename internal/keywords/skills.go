// Package keywords provides keyword and key-requirement extraction over
// resume and job-description text.
package keywords

import (
	"regexp"
	"sync"
)

// skillDictionary is the curated vocabulary of canonical skill terms used
// for whole-word matching across the analyzer. Terms are lowercase.
var skillDictionary = []string{
	// Programming languages
	"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin", "go",
	"typescript", "scala", "r", "perl", "rust", "dart", "html", "css", "sql",

	// Frameworks and libraries
	"react", "angular", "vue", "django", "flask", "spring", "node.js", "express",
	"tensorflow", "pytorch", "pandas", "numpy", "scikit-learn", "keras", ".net", "laravel",

	// Cloud & DevOps
	"aws", "azure", "google cloud", "docker", "kubernetes", "jenkins", "terraform", "ansible",
	"ci/cd", "devops", "microservices", "serverless",

	// Databases
	"mysql", "postgresql", "mongodb", "oracle", "sql server", "sqlite", "redis", "cassandra",
	"dynamodb", "firebase",

	// Tools & software
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack", "trello",
	"visual studio code", "intellij", "eclipse", "photoshop", "illustrator", "figma",

	// Soft skills
	"leadership", "communication", "teamwork", "problem-solving", "critical thinking",
	"time management", "creativity", "adaptability", "project management", "agile",
	"scrum", "kanban",

	// Data science / AI
	"machine learning", "deep learning", "artificial intelligence", "data science",
	"data analysis", "natural language processing", "computer vision", "big data",
	"data engineering", "data visualization", "statistics", "analytics",

	// Mobile development
	"ios", "android", "react native", "flutter", "mobile development", "app development",
	"cross-platform", "pwa",

	// Other technical skills
	"rest api", "graphql", "oauth", "jwt", "web services", "soa", "mvc", "orm",
	"responsive design", "web accessibility", "ui/ux", "frontend", "backend",
	"full-stack", "testing", "qa", "security", "blockchain",
}

var (
	skillPatternsOnce sync.Once
	skillPatterns     map[string]*regexp.Regexp
)

// skillMatchers returns one compiled whole-word pattern per dictionary term.
// Compiled once; the map is read-only afterwards and safe for concurrent use.
func skillMatchers() map[string]*regexp.Regexp {
	skillPatternsOnce.Do(func() {
		skillPatterns = make(map[string]*regexp.Regexp, len(skillDictionary))
		for _, skill := range skillDictionary {
			skillPatterns[skill] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
		}
	})
	return skillPatterns
}

// DictionarySkills returns the dictionary terms present in the text as
// whole words, lowercase, in no particular order.
func DictionarySkills(text string) []string {
	var found []string
	for skill, pattern := range skillMatchers() {
		if pattern.MatchString(text) {
			found = append(found, skill)
		}
	}
	return found
}
