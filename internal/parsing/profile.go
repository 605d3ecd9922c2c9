// Package parsing turns free-form resume or goal text into a structured
// profile: abbreviation expansion, normalization, section-triggered line
// classification, and stop-word filtered tokenization.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-compass/internal/dictionary"
	"github.com/jonathan/career-compass/internal/types"
)

var (
	nonWord  = regexp.MustCompile(`[^A-Za-z0-9_\s]`)
	blankRun = regexp.MustCompile(`[ \t]+`)
)

// stopWords holds generic English stop words plus the section-header nouns
// themselves, so a header line does not pollute its own bucket.
var stopWords = map[string]bool{
	"THE": true, "AND": true, "OR": true, "BUT": true, "IN": true,
	"ON": true, "AT": true, "TO": true, "FOR": true, "OF": true,
	"WITH": true, "BY": true, "FROM": true, "UP": true, "ABOUT": true,
	"INTO": true, "THROUGH": true, "DURING": true, "BEFORE": true,
	"AFTER": true, "ABOVE": true, "BELOW": true, "BETWEEN": true,
	"AMONG": true, "SKILLS": true, "TOOLS": true, "EDUCATION": true,
	"EXPERIENCE": true, "CERTIFICATIONS": true,
}

// Section trigger words. A line containing any trigger for a bucket lands in
// that bucket; a line can satisfy several buckets at once and is then added
// to each independently.
var (
	skillTriggers         = []string{"SKILLS", "TECHNICAL"}
	toolTriggers          = []string{"TOOLS", "SOFTWARE", "PROGRAMMING"}
	educationTriggers     = []string{"EDUCATION", "DEGREE", "UNIVERSITY", "COLLEGE"}
	certificationTriggers = []string{"CERTIFICATION", "CERTIFIED", "LICENSE"}
	experienceTriggers    = []string{"EXPERIENCE", "WORK", "JOB"}
)

// NormalizeText expands abbreviations, upper-cases, replaces punctuation
// with spaces, and collapses runs of spaces and tabs. Line breaks are
// preserved so section extraction can operate per line.
func NormalizeText(text string) string {
	expanded := dictionary.Expand(text)
	expanded = strings.ToUpper(expanded)

	lines := strings.Split(expanded, "\n")
	for i, line := range lines {
		line = nonWord.ReplaceAllString(line, " ")
		line = blankRun.ReplaceAllString(line, " ")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// ExtractProfile derives a UserProfile from raw text. It never fails: text
// with no recognizable sections yields an empty profile.
func ExtractProfile(text string) *types.UserProfile {
	var skills, tools, education, certifications, experience []string

	for _, line := range strings.Split(NormalizeText(text), "\n") {
		if line == "" {
			continue
		}

		if containsAny(line, skillTriggers) {
			skills = append(skills, extractWords(line)...)
		}
		if containsAny(line, toolTriggers) {
			tools = append(tools, extractWords(line)...)
		}
		if containsAny(line, educationTriggers) {
			education = append(education, extractWords(line)...)
		}
		if containsAny(line, certificationTriggers) {
			certifications = append(certifications, extractWords(line)...)
		}
		if containsAny(line, experienceTriggers) {
			// Experience is kept as whole lines for later classification.
			experience = append(experience, line)
		}
	}

	return &types.UserProfile{
		Skills:         dedupe(skills),
		Tools:          dedupe(tools),
		Education:      dedupe(education),
		Certifications: dedupe(certifications),
		Experience:     dedupe(experience),
	}
}

func containsAny(line string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(line, t) {
			return true
		}
	}
	return false
}

// extractWords tokenizes a normalized line, dropping tokens of length two or
// less and stop words.
func extractWords(line string) []string {
	fields := strings.Fields(line)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) <= 2 || stopWords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// dedupe removes duplicates preserving first-seen order, so repeated runs
// over the same text produce identical profiles.
func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
