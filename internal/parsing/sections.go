package parsing

import (
	"regexp"
	"strings"
)

// PreambleSection keys text that appears before the first recognized header.
const PreambleSection = "preamble"

type headerSynonym struct {
	label string
	key   string
}

// Declaration order doubles as tie resolution: the first synonym that matches
// a line wins.
var headerSynonyms = []headerSynonym{
	{"experience", "experience"},
	{"work experience", "experience"},
	{"employment", "experience"},
	{"employment history", "experience"},
	{"professional experience", "experience"},
	{"work history", "experience"},
	{"career history", "experience"},
	{"education", "education"},
	{"academic background", "education"},
	{"qualifications", "education"},
	{"skills", "skills"},
	{"technical skills", "skills"},
	{"core competencies", "skills"},
	{"competencies", "skills"},
	{"technologies", "skills"},
	{"expertise", "skills"},
	{"summary", "summary"},
	{"professional summary", "summary"},
	{"career summary", "summary"},
	{"profile", "summary"},
	{"objective", "summary"},
	{"about me", "summary"},
	{"about", "summary"},
	{"projects", "projects"},
	{"personal projects", "projects"},
	{"portfolio", "projects"},
	{"certifications", "certifications"},
	{"certificates", "certifications"},
	{"licenses", "certifications"},
	{"languages", "languages"},
	{"contact", "contact"},
	{"contact information", "contact"},
	{"contact details", "contact"},
	{"references", "references"},
	{"referees", "references"},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// SegmentSections splits plain resume text into labeled section bodies. Lines
// that equal or start with a known header synonym open a new section; all
// other lines accumulate into the current one. Bodies are joined with single
// spaces and only non-empty bodies appear in the result.
func SegmentSections(text string) map[string]string {
	sections := map[string]string{}
	current := PreambleSection
	var body []string

	flush := func() {
		joined := strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.Join(body, " "), " "))
		if joined != "" {
			if existing, ok := sections[current]; ok && existing != "" {
				joined = existing + " " + joined
			}
			sections[current] = joined
		}
		body = body[:0]
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		key, remainder, ok := matchHeader(line)
		if !ok {
			body = append(body, line)
			continue
		}
		flush()
		current = key
		if remainder != "" {
			body = append(body, remainder)
		}
	}
	flush()

	return sections
}

// matchHeader reports whether the line is a section header, returning the
// canonical section key and any trailing text after the label.
func matchHeader(line string) (key, remainder string, ok bool) {
	lowered := strings.ToLower(line)
	for _, syn := range headerSynonyms {
		if lowered == syn.label {
			return syn.key, "", true
		}
		if strings.HasPrefix(lowered, syn.label) && !isAlphanumeric(lowered[len(syn.label)]) {
			rest := strings.TrimSpace(line[len(syn.label):])
			rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
			return syn.key, rest, true
		}
	}
	return "", "", false
}

func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
