package schemas

// RoadmapSchema constrains model-generated career roadmaps. Phases carry a
// title, a duration label, and non-empty focus and milestone lists; the
// top-level document must name the stream and provide at least one phase.
const RoadmapSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "CareerRoadmap",
  "type": "object",
  "required": ["stream", "summary", "phases"],
  "additionalProperties": true,
  "properties": {
    "stream": {
      "type": "string",
      "minLength": 1
    },
    "summary": {
      "type": "string",
      "minLength": 1
    },
    "phases": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title", "duration", "focus", "milestones"],
        "properties": {
          "title": {
            "type": "string",
            "minLength": 1
          },
          "duration": {
            "type": "string",
            "minLength": 1
          },
          "focus": {
            "type": "array",
            "minItems": 1,
            "items": { "type": "string" }
          },
          "milestones": {
            "type": "array",
            "minItems": 1,
            "items": { "type": "string" }
          }
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": { "type": "string" }
    },
    "resources": {
      "type": "array",
      "items": { "type": "string" }
    },
    "source": {
      "type": "string"
    }
  }
}`
