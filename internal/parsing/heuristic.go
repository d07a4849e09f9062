package parsing

import (
	"regexp"
	"strings"
)

const (
	nameScanLines     = 5
	maxInstitutionLen = 200
	minNameLen        = 2
	maxNameLen        = 60
)

var (
	namePattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z .'\-]*$`)
	skillSplitter = regexp.MustCompile(`[,;•·|\-\n]`)
)

// ParseHeuristic extracts a complete ParsedResume from raw text using only
// pattern matching and section segmentation. It never calls an external
// service and is total over any input, including the empty string.
func ParseHeuristic(text string) ParsedResume {
	sections := SegmentSections(text)
	emails := ExtractEmails(text)
	phones := ExtractPhones(text)

	result := ParsedResume{
		FullName:  guessName(text),
		LinkedIn:  extractLinkedIn(text),
		Portfolio: extractPortfolio(text),
		Skills:    splitSkills(sections["skills"]),
	}
	if len(emails) > 0 {
		result.Email = emails[0]
	}
	if len(phones) > 0 {
		result.Phone = phones[0]
	}
	if first, last, ok := splitName(result.FullName); ok {
		result.FirstName = first
		result.LastName = last
	}

	// The heuristic path does not parse structure inside the experience
	// section; the whole body rides along as the description.
	if exp := sections["experience"]; exp != "" {
		result.WorkExperience = []WorkExperience{{Description: exp}}
	}
	if edu := sections["education"]; edu != "" {
		if len(edu) > maxInstitutionLen {
			edu = edu[:maxInstitutionLen]
		}
		result.Education = []Education{{Institution: edu}}
	}

	result.Normalize()
	return result
}

// guessName scans the first few non-blank lines for one that plausibly is a
// person's name: no email, not phone-like, short, and only name characters.
func guessName(text string) string {
	scanned := 0
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		scanned++
		if scanned > nameScanLines {
			break
		}
		if strings.Contains(line, "@") {
			continue
		}
		if len(ExtractPhones(line)) > 0 {
			continue
		}
		if len(line) < minNameLen || len(line) > maxNameLen {
			continue
		}
		if namePattern.MatchString(line) {
			return line
		}
	}
	return ""
}

func splitName(full string) (first, last string, ok bool) {
	words := strings.Fields(full)
	if len(words) < 2 {
		return "", "", false
	}
	return words[0], strings.Join(words[1:], " "), true
}

func splitSkills(body string) []string {
	if strings.TrimSpace(body) == "" {
		return []string{}
	}
	parts := skillSplitter.Split(body, -1)
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
