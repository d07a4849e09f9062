// Package fields loads and classifies tenant-configured custom field
// definitions for a given entity type. Definitions are fetched fresh per parse
// request and never cached across requests.
package fields

import (
	"encoding/json"
	"sort"
	"strings"
)

const (
	TypeSelect = "select"
	TypeRadio  = "radio"
)

// Definition is one tenant-configured attribute as delivered by the field
// schema service. Options arrives in several shapes (native list, JSON-encoded
// string, newline-delimited string, or map) and must go through
// NormalizeOptions before use.
type Definition struct {
	FieldName  string `json:"field_name"`
	FieldLabel string `json:"field_label"`
	FieldType  string `json:"field_type"`
	IsHidden   bool   `json:"is_hidden"`
	Options    any    `json:"options,omitempty"`
}

// Classification is the in-memory shape used for prompt building and option
// matching. Options is empty for free-text fields.
type Classification struct {
	Name    string
	Label   string
	Type    string
	Options []string
}

// Closed reports whether the field is restricted to a fixed option list.
func (c Classification) Closed() bool {
	return len(c.Options) > 0 && (c.Type == TypeSelect || c.Type == TypeRadio)
}

// Classify filters out hidden fields and produces one Classification per
// visible definition, with options normalized. Order follows the input.
func Classify(defs []Definition) []Classification {
	out := make([]Classification, 0, len(defs))
	for _, def := range defs {
		if def.IsHidden {
			continue
		}
		name := strings.TrimSpace(def.FieldName)
		label := strings.TrimSpace(def.FieldLabel)
		if name == "" && label == "" {
			continue
		}
		if label == "" {
			label = name
		}
		c := Classification{
			Name:  name,
			Label: label,
			Type:  strings.ToLower(strings.TrimSpace(def.FieldType)),
		}
		if c.Type == TypeSelect || c.Type == TypeRadio {
			c.Options = NormalizeOptions(def.Options)
		}
		out = append(out, c)
	}
	return out
}

// NormalizeOptions converts any of the accepted option representations into a
// deduplicated ordered list of trimmed strings. Map values are taken in
// ascending key order so normalization is deterministic.
func NormalizeOptions(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return dedupTrim(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return dedupTrim(out)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			if s, ok := v[k].(string); ok {
				out = append(out, s)
			}
		}
		return dedupTrim(out)
	case string:
		return normalizeOptionString(v)
	default:
		return []string{}
	}
}

// normalizeOptionString handles a JSON-encoded list or map, falling back to
// newline-delimited plain text.
func normalizeOptionString(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return NormalizeOptions(decoded)
		}
	}
	return dedupTrim(strings.Split(trimmed, "\n"))
}

func dedupTrim(values []string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
