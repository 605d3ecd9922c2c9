// Package catalog holds the immutable career-stream reference data: keyword
// sets, tools, certifications, education paths, and advanced roles per
// stream, plus the weighted career tracks used by the gap analyzer.
package catalog

import "strings"

// SalaryRange holds annual salary figures in USD for a role at three
// seniority levels.
type SalaryRange struct {
	Entry  int `json:"entry"`
	Mid    int `json:"mid"`
	Senior int `json:"senior"`
}

// Role is a target job title attached to a stream.
type Role struct {
	Title          string      `json:"title"`
	MatchThreshold int         `json:"match_threshold"` // minimum overall score (0-100) to qualify
	Portals        []string    `json:"portals"`
	GapSkills      []string    `json:"gap_skills"`
	Salary         SalaryRange `json:"salary_range"`
	GrowthRate     float64     `json:"growth_rate"` // fractional annual growth
	Companies      []string    `json:"companies"`
}

// Stream is a career/discipline domain bundling the reference lists the
// matcher scores against.
type Stream struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Keywords       []string `json:"keywords"`
	Tools          []string `json:"tools"`
	Certifications []string `json:"certifications"`
	EducationPaths []string `json:"education_paths"`
	IndustryFocus  []string `json:"industry_focus"`
	Roles          []Role   `json:"advanced_roles"`
}

// WeightedSkill is a single skill with an importance weight (1-10) used by
// the gap analyzer's per-skill scoring.
type WeightedSkill struct {
	Name       string `json:"name"`
	Importance int    `json:"importance"`
}

// SkillGroup groups weighted skills under a category label.
type SkillGroup struct {
	Category string          `json:"category"`
	Skills   []WeightedSkill `json:"skills"`
}

// CareerPath is a pathway evaluated by the gap analyzer. RequiredSkills are
// the core skills for the role; GapRequirements are skills candidates
// typically lack.
type CareerPath struct {
	Title           string      `json:"title"`
	RequiredSkills  []string    `json:"required_skills"`
	GapRequirements []string    `json:"gap_requirements"`
	Salary          SalaryRange `json:"average_salary"`
	GrowthRate      float64     `json:"growth_rate"`
	Companies       []string    `json:"companies"`
}

// CareerTrack carries the weighted-skill reference data for a stream family.
// Historically this lived in a second registry with its own matching engine;
// it is folded into the catalog so both flat-weight and per-skill scoring
// read the same data.
type CareerTrack struct {
	Name        string       `json:"name"`
	ATSKeywords []string     `json:"ats_keywords"`
	SkillGroups []SkillGroup `json:"skill_groups"`
	Paths       []CareerPath `json:"career_paths"`
}

// DefaultStreamID is substituted when a caller supplies an unknown or empty
// stream id. Callers that want an explicit miss should use Lookup.
const DefaultStreamID = "pcm"

// registration lists every id the catalog answers to, in order. Aliases map
// several ids to the same stream on purpose: the multi-stream detector
// evaluates each id independently and ties between aliases are expected,
// with the earlier registration winning.
var registration = []struct {
	id     string
	stream *Stream
}{
	{"pcm", &engineeringStream},
	{"pcb", &lifeSciencesStream},
	{"pcmb", &integratedStream},
	{"physics", &engineeringStream},
	{"mathematics", &engineeringStream},
	{"chemistry", &lifeSciencesStream},
	{"biology", &lifeSciencesStream},
	{"engineering", &engineeringStream},
	{"medical", &lifeSciencesStream},
	{"life-sciences", &lifeSciencesStream},
	{"physical-sciences", &engineeringStream},
	{"integrated", &integratedStream},
}

// Catalog provides lookup over the registered streams and career tracks.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	ids     []string
	streams map[string]*Stream
	tracks  map[string]*CareerTrack
}

// New constructs the catalog from the built-in reference data.
func New() *Catalog {
	c := &Catalog{
		ids:     make([]string, 0, len(registration)),
		streams: make(map[string]*Stream, len(registration)),
		tracks:  make(map[string]*CareerTrack),
	}
	for _, entry := range registration {
		c.ids = append(c.ids, entry.id)
		c.streams[entry.id] = entry.stream
	}

	c.tracks["pcm"] = &physicsMathematicsTrack
	c.tracks["pcb"] = &biologyChemistryTrack
	c.tracks["pcmb"] = &physicsMathematicsTrack
	return c
}

// Lookup returns the stream for the given id (case-insensitive) and whether
// it was found.
func (c *Catalog) Lookup(id string) (*Stream, bool) {
	s, ok := c.streams[strings.ToLower(strings.TrimSpace(id))]
	return s, ok
}

// StreamByID resolves an id to a stream, substituting the default stream for
// empty or unknown ids. The silent fallback is part of the analyzer's
// contract; use Lookup to detect a miss.
func (c *Catalog) StreamByID(id string) *Stream {
	if s, ok := c.Lookup(id); ok {
		return s
	}
	return c.streams[DefaultStreamID]
}

// IDs returns every registered id (aliases included) in registration order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Streams returns the distinct streams in registration order, for catalog
// listings and UI dropdowns.
func (c *Catalog) Streams() []*Stream {
	seen := make(map[string]bool, 3)
	out := make([]*Stream, 0, 3)
	for _, id := range c.ids {
		s := c.streams[id]
		if !seen[s.ID] {
			seen[s.ID] = true
			out = append(out, s)
		}
	}
	return out
}

// TrackFor returns the career track for a stream id or track name. Unknown
// ids fall back to the physics/mathematics track, mirroring StreamByID's
// default behavior.
func (c *Catalog) TrackFor(id string) *CareerTrack {
	key := strings.ToLower(strings.TrimSpace(id))
	if t, ok := c.tracks[key]; ok {
		return t
	}
	if s, ok := c.streams[key]; ok {
		if t, ok := c.tracks[s.ID]; ok {
			return t
		}
	}
	return &physicsMathematicsTrack
}

// CombinedReference returns the concatenation of a stream's keyword, tool,
// education, and certification lists, in that order. The gap computation
// treats this as the full requirement set.
func CombinedReference(s *Stream) []string {
	out := make([]string, 0, len(s.Keywords)+len(s.Tools)+len(s.EducationPaths)+len(s.Certifications))
	out = append(out, s.Keywords...)
	out = append(out, s.Tools...)
	out = append(out, s.EducationPaths...)
	out = append(out, s.Certifications...)
	return out
}
