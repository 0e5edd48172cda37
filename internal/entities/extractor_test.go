package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k5602/CV-Analayzer/internal/nlp"
)

const sampleResume = `John Doe
john.doe@example.com
(555) 123-4567
linkedin.com/in/johndoe
github.com/johndoe

Summary
Software engineer with five years of backend development building
distributed services and data pipelines.

Experience

Senior Software Engineer at Acme Corp
Jan 2020 - Mar 2023
Built event-driven microservices in Go and Python.
Led migration to Kubernetes.

Software Engineer, Initech
2017 - 2020
Developed REST APIs with Django and PostgreSQL.

Education

Bachelor of Science in Computer Science
State University
2013 - 2017

Skills
Python, Go, Docker, Kubernetes, PostgreSQL, AWS

Projects

Log Aggregator
Streaming log pipeline built with Kafka and Go.

Certifications
- AWS Certified Solutions Architect
- Certified Kubernetes Administrator
`

func newTestExtractor() *Extractor {
	return NewExtractor(nlp.NewTagger(), nil)
}

func TestExtract_ContactInfo(t *testing.T) {
	entities := newTestExtractor().Extract(sampleResume)

	assert.Equal(t, "John Doe", entities.ContactInfo.Name)
	assert.Equal(t, "john.doe@example.com", entities.ContactInfo.Email)
	assert.Equal(t, "(555) 123-4567", entities.ContactInfo.Phone)
	assert.Equal(t, "linkedin.com/in/johndoe", entities.ContactInfo.LinkedIn)
	assert.Equal(t, "github.com/johndoe", entities.ContactInfo.GitHub)
}

func TestExtract_Skills(t *testing.T) {
	entities := newTestExtractor().Extract(sampleResume)

	assert.Contains(t, entities.Skills, "python")
	assert.Contains(t, entities.Skills, "go")
	assert.Contains(t, entities.Skills, "docker")
	assert.Contains(t, entities.Skills, "kubernetes")
	assert.Contains(t, entities.Skills, "postgresql")
	assert.Contains(t, entities.Skills, "aws")
	assert.IsIncreasing(t, entities.Skills)
}

func TestExtract_Experience(t *testing.T) {
	entities := newTestExtractor().Extract(sampleResume)

	require.Len(t, entities.Experience, 2)

	first := entities.Experience[0]
	assert.Equal(t, "Senior Software Engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Jan 2020 - Mar 2023", first.DateRange)
	assert.Contains(t, first.Description, "microservices")

	second := entities.Experience[1]
	assert.Equal(t, "Software Engineer", second.Title)
	assert.Equal(t, "Initech", second.Company)
	assert.Equal(t, "2017 - 2020", second.DateRange)
}

func TestExtract_Education(t *testing.T) {
	entities := newTestExtractor().Extract(sampleResume)

	require.Len(t, entities.Education, 1)
	edu := entities.Education[0]
	assert.Equal(t, "Bachelor of Science in Computer Science", edu.Degree)
	assert.Equal(t, "State University", edu.Institution)
	assert.Equal(t, "2013 - 2017", edu.DateRange)
}

func TestExtract_Projects(t *testing.T) {
	entities := newTestExtractor().Extract(sampleResume)

	require.Len(t, entities.Projects, 1)
	project := entities.Projects[0]
	assert.Equal(t, "Log Aggregator", project.Name)
	assert.Contains(t, project.Technologies, "go")
}

func TestExtract_Certifications(t *testing.T) {
	entities := newTestExtractor().Extract(sampleResume)

	assert.Contains(t, entities.Certifications, "AWS Certified Solutions Architect")
	assert.Contains(t, entities.Certifications, "Certified Kubernetes Administrator")
}

func TestExtract_Summary(t *testing.T) {
	entities := newTestExtractor().Extract(sampleResume)

	assert.Contains(t, entities.Summary, "backend development")
}

func TestExtract_SummaryFallsBackToFirstParagraph(t *testing.T) {
	text := "Seasoned backend engineer building reliable systems.\n\nWorked on billing and payments."
	entities := newTestExtractor().Extract(text)

	assert.Equal(t, "Seasoned backend engineer building reliable systems.", entities.Summary)
}

func TestExtract_HeaderAdjacentEntry(t *testing.T) {
	// No blank line between the section header and its first entry.
	text := "John Doe\njohn@x.com\n555-123-4567\n\n" +
		"Experience\nEngineer at Acme, Jan 2020 - Dec 2021\nBuilt APIs.\n\n" +
		"Skills\npython, sql\n"
	entities := newTestExtractor().Extract(text)

	assert.Equal(t, "john@x.com", entities.ContactInfo.Email)
	assert.Contains(t, entities.Skills, "python")
	require.Len(t, entities.Experience, 1)
	assert.Equal(t, "Jan 2020 - Dec 2021", entities.Experience[0].DateRange)
}

func TestExtract_EmptyText(t *testing.T) {
	entities := newTestExtractor().Extract("")

	assert.Empty(t, entities.ContactInfo.Name)
	assert.NotNil(t, entities.Skills)
	assert.Empty(t, entities.Skills)
	assert.NotNil(t, entities.Experience)
	assert.Empty(t, entities.Experience)
	assert.NotNil(t, entities.Education)
	assert.Empty(t, entities.Education)
	assert.NotNil(t, entities.Projects)
	assert.NotNil(t, entities.Certifications)
	assert.Empty(t, entities.Summary)
}

func TestExtract_NoSections(t *testing.T) {
	text := "Jane Roe\njane@roe.dev\nI write software in python and go for fun."
	entities := newTestExtractor().Extract(text)

	assert.Equal(t, "Jane Roe", entities.ContactInfo.Name)
	assert.Equal(t, "jane@roe.dev", entities.ContactInfo.Email)
	// Without a skills section the whole text is scanned.
	assert.Contains(t, entities.Skills, "python")
	assert.Empty(t, entities.Experience)
	assert.Empty(t, entities.Education)
}

func TestExtract_NilTagger(t *testing.T) {
	extractor := NewExtractor(nil, nil)
	entities := extractor.Extract(sampleResume)

	assert.Equal(t, "John Doe", entities.ContactInfo.Name)
	assert.Empty(t, entities.ContactInfo.Location)
	assert.Contains(t, entities.Skills, "python")
}

func TestExtract_Location(t *testing.T) {
	text := "Jane Roe\njane@roe.dev\nBased in New York, open to remote work.\n"
	entities := newTestExtractor().Extract(text)

	assert.Equal(t, "New York", entities.ContactInfo.Location)
}

func TestSectionEntries_SkipsHeaderAndShortEntries(t *testing.T) {
	window := "Experience\n\nok\n\nSenior Engineer at Foo\nShipped the billing system."
	entries := sectionEntries(window)

	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "Senior Engineer")
}

func TestSectionEntries_HeaderSharesChunkWithFirstEntry(t *testing.T) {
	window := "Experience\nEngineer at Acme\nBuilt APIs.\n\nAnalyst at Foo\nWrote reports."
	entries := sectionEntries(window)

	require.Len(t, entries, 2)
	assert.Contains(t, entries[0], "Engineer at Acme")
	assert.NotContains(t, entries[0], "Experience")
}

func TestDatePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jan 2020 - Mar 2023", "Jan 2020 - Mar 2023"},
		{"January 2018 to December 2019", "January 2018 to December 2019"},
		{"3/2019 - 7/2021", "3/2019 - 7/2021"},
		{"2015 - 2018", "2015 - 2018"},
		{"2021 - present", "2021 - present"},
		{"2021 – current", "2021 – current"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, datePattern.FindString(tt.in), "input %q", tt.in)
	}
}
