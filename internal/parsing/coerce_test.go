package parsing

import (
	"reflect"
	"testing"

	"resume-parser/internal/fields"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"commentary around fence", "Here you go:\n```json\n{\"a\":1}\n```\nHope that helps!", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDecodeModelResponseRejectsNonObjects(t *testing.T) {
	for _, raw := range []string{"", "not json at all", `"just a string"`, "[1,2,3]", "null"} {
		if _, err := decodeModelResponse(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestDecodeModelResponseAcceptsFencedObject(t *testing.T) {
	obj, err := decodeModelResponse("```json\n{\"full_name\": \"Jane\"}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj["full_name"] != "Jane" {
		t.Fatalf("got %v", obj)
	}
}

func TestCoerceResultToleratesWrongTypes(t *testing.T) {
	obj := map[string]any{
		"full_name":              "Jane Doe",
		"total_experience_years": float64(7),
		"skills":                 "not a list",
		"education":              []any{map[string]any{"degree": "BSc", "institution": "MIT", "year": float64(2019)}, "stray string"},
		"work_experience":        nil,
	}
	got := coerceResult(obj, nil)

	if got.FullName != "Jane Doe" {
		t.Fatalf("full_name = %q", got.FullName)
	}
	if got.TotalExperienceYears != "7" {
		t.Fatalf("total_experience_years = %q", got.TotalExperienceYears)
	}
	if len(got.Skills) != 0 {
		t.Fatalf("skills = %v", got.Skills)
	}
	want := []Education{{Degree: "BSc", Institution: "MIT", Year: "2019"}}
	if !reflect.DeepEqual(got.Education, want) {
		t.Fatalf("education = %v, want %v", got.Education, want)
	}
	if len(got.WorkExperience) != 0 {
		t.Fatalf("work_experience = %v", got.WorkExperience)
	}
}

func TestProjectCustomFieldsAcceptsNameOrLabelKey(t *testing.T) {
	classified := []fields.Classification{
		{Name: "employment_type", Label: "Employment Type", Type: fields.TypeSelect, Options: []string{"Freelance", "Full-Time"}},
		{Name: "notice_period", Label: "Notice Period", Type: "text"},
	}

	byName := projectCustomFields(map[string]any{"employment_type": "freelancer"}, classified)
	if byName["Employment Type"] != "freelancer" {
		t.Fatalf("by name: %v", byName)
	}

	byLabel := projectCustomFields(map[string]any{"Notice Period": "30 days"}, classified)
	if byLabel["Notice Period"] != "30 days" {
		t.Fatalf("by label: %v", byLabel)
	}
}

func TestProjectCustomFieldsDropsUnknownAndEmpty(t *testing.T) {
	classified := []fields.Classification{
		{Name: "employment_type", Label: "Employment Type", Type: fields.TypeSelect, Options: []string{"Freelance"}},
	}
	got := projectCustomFields(map[string]any{
		"employment_type": "  ",
		"made_up_field":   "value",
	}, classified)
	if len(got) != 0 {
		t.Fatalf("expected nothing kept, got %v", got)
	}
}

func TestProjectCustomFieldsAbsentStaysAbsent(t *testing.T) {
	classified := []fields.Classification{
		{Name: "employment_type", Label: "Employment Type", Type: fields.TypeSelect, Options: []string{"Freelance"}},
	}
	if got := projectCustomFields(map[string]any{}, classified); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := projectCustomFields("not an object", classified); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestDecomposeAddressFallback(t *testing.T) {
	r := ParsedResume{Location: "San Francisco, CA"}
	decomposeAddress(&r)
	if r.Address != "San Francisco, CA" {
		t.Fatalf("address = %q", r.Address)
	}

	// Any populated structured part suppresses the fallback.
	r = ParsedResume{Location: "San Francisco, CA", City: "San Francisco"}
	decomposeAddress(&r)
	if r.Address != "" {
		t.Fatalf("fallback ran despite structured city: %q", r.Address)
	}
}
