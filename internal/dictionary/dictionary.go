// Package dictionary expands technical abbreviations into their full forms
// so that free-text profiles and reference keyword lists meet on common
// vocabulary before matching.
package dictionary

import (
	"regexp"
	"strings"
)

type entry struct {
	abbr string
	full string
}

// entries is applied in order. Earlier expansions can introduce words that a
// later pattern would match, so the order is part of the observable output
// and must stay stable.
var entries = []entry{
	// Computer science and data science
	{"NLP", "Natural Language Processing"},
	{"ML", "Machine Learning"},
	{"AI", "Artificial Intelligence"},
	{"DL", "Deep Learning"},
	{"CV", "Computer Vision"},
	{"DS", "Data Science"},
	{"MLOps", "Machine Learning Operations"},
	{"DevOps", "Development Operations"},
	{"CI/CD", "Continuous Integration/Continuous Deployment"},
	{"API", "Application Programming Interface"},
	{"UI", "User Interface"},
	{"UX", "User Experience"},
	{"SQL", "Structured Query Language"},
	{"NoSQL", "Not Only SQL"},
	{"ETL", "Extract Transform Load"},
	{"BI", "Business Intelligence"},
	{"KPI", "Key Performance Indicator"},
	{"ROI", "Return on Investment"},

	// Physics and mathematics
	{"QM", "Quantum Mechanics"},
	{"EM", "Electromagnetism"},
	{"TD", "Thermodynamics"},
	{"SM", "Statistical Mechanics"},
	{"GR", "General Relativity"},
	{"SR", "Special Relativity"},
	{"QFT", "Quantum Field Theory"},
	{"LA", "Linear Algebra"},
	{"Calc", "Calculus"},
	{"ODE", "Ordinary Differential Equations"},
	{"PDE", "Partial Differential Equations"},
	{"FFT", "Fast Fourier Transform"},
	{"CAD", "Computer-Aided Design"},
	{"CAM", "Computer-Aided Manufacturing"},
	{"FEA", "Finite Element Analysis"},
	{"CFD", "Computational Fluid Dynamics"},
	{"FEM", "Finite Element Method"},
	{"DSA", "Data Structures and Algorithms"},

	// Chemistry and biology
	{"HPLC", "High-Performance Liquid Chromatography"},
	{"GC", "Gas Chromatography"},
	{"MS", "Mass Spectrometry"},
	{"NMR", "Nuclear Magnetic Resonance"},
	{"IR", "Infrared Spectroscopy"},
	{"UV", "Ultraviolet Spectroscopy"},
	{"XRD", "X-Ray Diffraction"},
	{"SEM", "Scanning Electron Microscopy"},
	{"TEM", "Transmission Electron Microscopy"},
	{"PCR", "Polymerase Chain Reaction"},
	{"DNA", "Deoxyribonucleic Acid"},
	{"RNA", "Ribonucleic Acid"},
	{"ATP", "Adenosine Triphosphate"},
	{"CRISPR", "Clustered Regularly Interspaced Short Palindromic Repeats"},
	{"GMO", "Genetically Modified Organism"},
	{"ELISA", "Enzyme-Linked Immunosorbent Assay"},
	{"SDS", "Sodium Dodecyl Sulfate"},
	{"PAGE", "Polyacrylamide Gel Electrophoresis"},
	{"BLAST", "Basic Local Alignment Search Tool"},

	// Laboratory and research
	{"QC", "Quality Control"},
	{"QA", "Quality Assurance"},
	{"R&D", "Research and Development"},
	{"SOP", "Standard Operating Procedure"},
	{"GLP", "Good Laboratory Practice"},
	{"GMP", "Good Manufacturing Practice"},
	{"GCP", "Good Clinical Practice"},
	{"ISO", "International Organization for Standardization"},
	{"FDA", "Food and Drug Administration"},
	{"EPA", "Environmental Protection Agency"},
	{"NIH", "National Institutes of Health"},
	{"NSF", "National Science Foundation"},
	{"DOE", "Department of Energy"},
	{"NASA", "National Aeronautics and Space Administration"},

	// General technical terms
	{"IoT", "Internet of Things"},
	{"AR", "Augmented Reality"},
	{"VR", "Virtual Reality"},
	{"MR", "Mixed Reality"},
	{"SaaS", "Software as a Service"},
	{"PaaS", "Platform as a Service"},
	{"IaaS", "Infrastructure as a Service"},
	{"GPU", "Graphics Processing Unit"},
	{"CPU", "Central Processing Unit"},
	{"RAM", "Random Access Memory"},
	{"SSD", "Solid State Drive"},
	{"HDD", "Hard Disk Drive"},
	{"LAN", "Local Area Network"},
	{"WAN", "Wide Area Network"},
	{"VPN", "Virtual Private Network"},
	{"DNS", "Domain Name System"},
	{"HTTP", "Hypertext Transfer Protocol"},
	{"HTTPS", "Hypertext Transfer Protocol Secure"},
	{"FTP", "File Transfer Protocol"},
	{"SSH", "Secure Shell"},
	{"SSL", "Secure Sockets Layer"},
	{"TLS", "Transport Layer Security"},
}

type compiled struct {
	re   *regexp.Regexp
	full string
}

var patterns = compilePatterns()

// byUpper indexes full forms by the upper-cased abbreviation for single-term
// lookup in Normalize.
var byUpper = func() map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[strings.ToUpper(e.abbr)] = e.full
	}
	return m
}()

func compilePatterns() []compiled {
	out := make([]compiled, 0, len(entries))
	for _, e := range entries {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(e.abbr) + `\b`)
		out = append(out, compiled{re: re, full: e.full})
	}
	return out
}

// Expand replaces every whole-word occurrence of a known abbreviation with
// its full form, case-insensitively, applying entries in dictionary order.
func Expand(text string) string {
	for _, p := range patterns {
		text = p.re.ReplaceAllString(text, p.full)
	}
	return text
}

// Normalize maps a single skill term to its full form when the whole term,
// ignoring case and surrounding whitespace, is a known abbreviation. Unknown
// terms pass through unchanged.
func Normalize(skill string) string {
	if full, ok := byUpper[strings.ToUpper(strings.TrimSpace(skill))]; ok {
		return full
	}
	return skill
}

// Size reports the number of dictionary entries, for diagnostics.
func Size() int {
	return len(entries)
}
