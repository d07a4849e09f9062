package parsing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"resume-parser/internal/fields"
)

// decodeModelResponse strips incidental formatting from the raw completion and
// parses it as a JSON object. Anything else is a validation failure.
func decodeModelResponse(raw string) (map[string]any, error) {
	cleaned := stripCodeFence(raw)
	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, fmt.Errorf("model output parse: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("model output parse: not an object")
	}
	return obj, nil
}

// stripCodeFence removes a single optional Markdown fenced code block wrapper,
// tolerating commentary before and after the fence.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	start := strings.Index(trimmed, "```")
	if start < 0 {
		return trimmed
	}
	rest := trimmed[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		// Drop the language tag line (e.g. ```json).
		if firstLine := strings.TrimSpace(rest[:nl]); firstLine == "" || isFenceTag(firstLine) {
			rest = rest[nl+1:]
		}
	}
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func isFenceTag(line string) bool {
	for _, r := range line {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// coerceResult maps a parsed model object onto the output contract, tolerating
// wrong types, missing keys and unknown custom field names.
func coerceResult(obj map[string]any, classified []fields.Classification) ParsedResume {
	result := ParsedResume{
		FullName:             asString(obj["full_name"]),
		FirstName:            asString(obj["first_name"]),
		LastName:             asString(obj["last_name"]),
		Email:                asString(obj["email"]),
		Phone:                asString(obj["phone"]),
		MobilePhone:          asString(obj["mobile_phone"]),
		Address:              asString(obj["address"]),
		Address2:             asString(obj["address_2"]),
		City:                 asString(obj["city"]),
		State:                asString(obj["state"]),
		Zip:                  asString(obj["zip"]),
		Location:             asString(obj["location"]),
		LinkedIn:             asString(obj["linkedin"]),
		Portfolio:            asString(obj["portfolio"]),
		CurrentJobTitle:      asString(obj["current_job_title"]),
		TotalExperienceYears: asString(obj["total_experience_years"]),
		Skills:               asStringList(obj["skills"]),
		Education:            asEducationList(obj["education"]),
		WorkExperience:       asWorkExperienceList(obj["work_experience"]),
	}
	if projected := projectCustomFields(obj["custom_fields"], classified); len(projected) > 0 {
		result.CustomFields = projected
	}
	return result
}

// projectCustomFields keeps only expected fields. The prompt keys the skeleton
// by field_name but models sometimes echo the label instead, so both are
// accepted; output is keyed by label, the canonical storage key. Expected
// fields the model omitted stay absent rather than becoming empty entries.
func projectCustomFields(raw any, classified []fields.Classification) map[string]string {
	obj, ok := raw.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil
	}
	out := map[string]string{}
	for _, c := range classified {
		val, present := obj[c.Name]
		if !present {
			val, present = obj[c.Label]
		}
		if !present {
			continue
		}
		if s := strings.TrimSpace(asString(val)); s != "" {
			out[c.Label] = s
		}
	}
	return out
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func asStringList(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asEducationList(value any) []Education {
	list, ok := value.([]any)
	if !ok {
		return []Education{}
	}
	out := make([]Education, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Education{
			Degree:      asString(obj["degree"]),
			Institution: asString(obj["institution"]),
			Year:        asString(obj["year"]),
		})
	}
	return out
}

func asWorkExperienceList(value any) []WorkExperience {
	list, ok := value.([]any)
	if !ok {
		return []WorkExperience{}
	}
	out := make([]WorkExperience, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, WorkExperience{
			Company:     asString(obj["company"]),
			JobTitle:    asString(obj["job_title"]),
			StartDate:   asString(obj["start_date"]),
			EndDate:     asString(obj["end_date"]),
			Description: asString(obj["description"]),
		})
	}
	return out
}
