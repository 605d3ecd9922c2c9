package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText_StripsPunctuationAndCase(t *testing.T) {
	out := NormalizeText("Skills: Python, C++!")
	assert.Equal(t, "SKILLS PYTHON C", out)
}

func TestNormalizeText_PreservesLines(t *testing.T) {
	out := NormalizeText("Skills: Python\nEducation: BSc")
	assert.Equal(t, "SKILLS PYTHON\nEDUCATION BSC", out)
}

func TestNormalizeText_ExpandsAbbreviations(t *testing.T) {
	out := NormalizeText("Skills: ML and NLP")
	assert.Contains(t, out, "MACHINE LEARNING")
	assert.Contains(t, out, "NATURAL LANGUAGE PROCESSING")
}

func TestExtractProfile_Sections(t *testing.T) {
	text := "Skills: Python, Machine Learning, Statistics\n" +
		"Tools: MATLAB, Git\n" +
		"Education: Bachelor of Science in Physics\n" +
		"Certifications: AWS Certified Machine Learning\n" +
		"Experience: 3 years as research assistant"

	p := ExtractProfile(text)

	assert.Contains(t, p.Skills, "PYTHON")
	assert.Contains(t, p.Skills, "MACHINE")
	assert.Contains(t, p.Skills, "LEARNING")
	assert.Contains(t, p.Tools, "MATLAB")
	assert.Contains(t, p.Tools, "GIT")
	assert.Contains(t, p.Education, "BACHELOR")
	assert.Contains(t, p.Education, "PHYSICS")
	assert.Contains(t, p.Certifications, "AWS")
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "EXPERIENCE 3 YEARS AS RESEARCH ASSISTANT", p.Experience[0])
}

func TestExtractProfile_HeaderWordsFiltered(t *testing.T) {
	p := ExtractProfile("Skills: Python")

	assert.NotContains(t, p.Skills, "SKILLS")
}

func TestExtractProfile_ShortAndStopTokensDropped(t *testing.T) {
	p := ExtractProfile("Skills: Go and R with Python")

	// Tokens of length <= 2 and stop words are discarded.
	assert.NotContains(t, p.Skills, "GO")
	assert.NotContains(t, p.Skills, "R")
	assert.NotContains(t, p.Skills, "AND")
	assert.NotContains(t, p.Skills, "WITH")
	assert.Contains(t, p.Skills, "PYTHON")
}

func TestExtractProfile_MultiTriggerLine(t *testing.T) {
	p := ExtractProfile("Skills and Certifications: HPLC operation")

	// A line naming several sections lands in each bucket.
	assert.Contains(t, p.Skills, "OPERATION")
	assert.Contains(t, p.Certifications, "OPERATION")
}

func TestExtractProfile_Deduplicates(t *testing.T) {
	p := ExtractProfile("Skills: Python Python Python")

	assert.Equal(t, []string{"PYTHON"}, p.Skills)
}

func TestExtractProfile_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n\n"} {
		p := ExtractProfile(text)
		assert.True(t, p.IsEmpty(), "input %q", text)
	}
}

func TestExtractProfile_NoTriggerLinesIgnored(t *testing.T) {
	p := ExtractProfile("I enjoy hiking and photography")

	assert.True(t, p.IsEmpty())
}

func TestExtractProfile_Deterministic(t *testing.T) {
	text := "Skills: Python, Statistics\nTools: MATLAB"

	assert.Equal(t, ExtractProfile(text), ExtractProfile(text))
}
