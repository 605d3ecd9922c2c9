package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func validRoadmap() types.Roadmap {
	return types.Roadmap{
		Stream:  "Engineering & Physical Sciences",
		Summary: "Strengthen computational foundations before specializing.",
		Phases: []types.RoadmapPhase{
			{
				Title:      "Foundations",
				Duration:   "0-3 months",
				Focus:      []string{"Python", "Linear Algebra"},
				Milestones: []string{"Complete an end-to-end analysis project"},
			},
		},
		Certifications: []string{"AWS Certified Machine Learning"},
		Resources:      []string{"Coursera: Machine Learning by Andrew Ng"},
		Source:         types.RoadmapSourceFallback,
	}
}

func TestValidateRoadmap_Valid(t *testing.T) {
	payload, err := json.Marshal(validRoadmap())
	require.NoError(t, err)

	assert.NoError(t, ValidateRoadmap(string(payload)))
}

func TestValidateRoadmap_MissingPhases(t *testing.T) {
	r := validRoadmap()
	r.Phases = nil
	payload, err := json.Marshal(r)
	require.NoError(t, err)

	err = ValidateRoadmap(string(payload))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateRoadmap_EmptyPhaseFocus(t *testing.T) {
	r := validRoadmap()
	r.Phases[0].Focus = nil
	payload, err := json.Marshal(r)
	require.NoError(t, err)

	assert.Error(t, ValidateRoadmap(string(payload)))
}

func TestValidateRoadmap_MalformedJSON(t *testing.T) {
	err := ValidateRoadmap("{not json")
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

func TestValidateJSONString_CustomSchema(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "x"}`))
	assert.Error(t, ValidateJSONString(schema, `{}`))
}
