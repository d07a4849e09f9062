package parsing

import (
	"regexp"
	"strings"
)

var optionSeparators = regexp.MustCompile(`[-_/]`)
var optionWhitespace = regexp.MustCompile(`\s+`)

// normalizeOption lowercases, folds -, _ and / into spaces, collapses
// whitespace and trims. Idempotent: normalizing an already-normalized string
// returns it unchanged.
func normalizeOption(value string) string {
	v := strings.ToLower(value)
	v = optionSeparators.ReplaceAllString(v, " ")
	v = optionWhitespace.ReplaceAllString(v, " ")
	return strings.TrimSpace(v)
}

// ResolveOption reconciles a free-text model answer against a closed option
// list. Priority: exact normalized match, then bidirectional substring
// containment. The first option in declared order wins; no match yields the
// empty string. The returned string is always one of the configured options
// with its original casing, or empty — never an invented value.
func ResolveOption(rawValue string, allowedOptions []string) string {
	normalized := normalizeOption(rawValue)
	if normalized == "" {
		return ""
	}

	for _, opt := range allowedOptions {
		if normalizeOption(opt) == normalized {
			return opt
		}
	}
	for _, opt := range allowedOptions {
		normalizedOpt := normalizeOption(opt)
		if normalizedOpt == "" {
			continue
		}
		if strings.Contains(normalizedOpt, normalized) || strings.Contains(normalized, normalizedOpt) {
			return opt
		}
	}
	return ""
}
