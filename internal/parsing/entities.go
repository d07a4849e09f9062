package parsing

import (
	"regexp"
	"strings"
)

const maxEntityCandidates = 3

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// Loose on purpose: country code, parenthesized area code and ./-/space
	// separators are all tolerated. Legitimacy checks (NANP area codes etc.)
	// are not this package's job.
	phonePattern    = regexp.MustCompile(`\+?\d{0,2}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}(?:\s*(?:x|ext\.?)\s*\d+)?`)
	nonDigitPattern = regexp.MustCompile(`\D`)

	linkedinPattern  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[A-Za-z0-9_%/.-]+`)
	portfolioPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_%/.-]+`)
)

// ExtractEmails returns up to three unique email addresses in order of first
// appearance.
func ExtractEmails(text string) []string {
	return dedupLimit(emailPattern.FindAllString(text, -1), nil)
}

// ExtractPhones returns up to three unique phone-like strings in order of
// first appearance. A match counts only when it keeps at least 3 digits after
// stripping separators and the trimmed raw match is at least 10 characters
// long, which rejects fragments like years and postal codes.
func ExtractPhones(text string) []string {
	return dedupLimit(phonePattern.FindAllString(text, -1), func(raw string) bool {
		trimmed := strings.TrimSpace(raw)
		digits := nonDigitPattern.ReplaceAllString(trimmed, "")
		return len(digits) >= 3 && len(trimmed) >= 10
	})
}

func dedupLimit(matches []string, keep func(string) bool) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if keep != nil && !keep(m) {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
		if len(out) == maxEntityCandidates {
			break
		}
	}
	return out
}

func extractLinkedIn(text string) string {
	return strings.TrimSpace(linkedinPattern.FindString(text))
}

func extractPortfolio(text string) string {
	return strings.TrimSpace(portfolioPattern.FindString(text))
}
