// Package types provides type definitions for structured data used throughout the career-compass system.
package types

// UserProfile is the set of terms extracted from one piece of free text
// (resume or goal statement). It is derived per request and never persisted
// by the analysis core.
type UserProfile struct {
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	Tools          []string `json:"tools"`
	Certifications []string `json:"certifications"`
}

// IsEmpty reports whether extraction found nothing in any bucket.
func (p *UserProfile) IsEmpty() bool {
	return len(p.Skills) == 0 &&
		len(p.Experience) == 0 &&
		len(p.Education) == 0 &&
		len(p.Tools) == 0 &&
		len(p.Certifications) == 0
}

// TermCount returns the total number of extracted terms across all buckets.
func (p *UserProfile) TermCount() int {
	return len(p.Skills) + len(p.Experience) + len(p.Education) + len(p.Tools) + len(p.Certifications)
}
