package parsing

import (
	"fmt"
	"strings"

	"resume-parser/internal/fields"
)

const baseInstructions = `You are a resume data extraction engine. Respond with JSON only. No markdown, no commentary.
Rules:
- Never invent data that is not present in the resume text.
- Use an empty string for absent scalar values and an empty array for absent lists. Never use null.
- Normalize dates to ISO-8601 (YYYY-MM-DD, or YYYY-MM / YYYY when the day or month is unknown).
- Normalize US phone numbers to (XXX) XXX-XXXX.
- If an address or location appears, decompose it into street (address), line 2 (address_2), city, state and zip.`

const closedFieldExamples = `Match values semantically, not literally. Examples of acceptable matches: "Freelancer" matches option "Freelance"; "full time" matches option "Full-Time"; "remote working" matches option "Remote".`

// BuildExtractionPrompt renders the extraction contract for one request: base
// rules, per-closed-field option constraints, and the JSON skeleton the model
// must fill.
func BuildExtractionPrompt(classified []fields.Classification) string {
	var b strings.Builder
	b.WriteString(baseInstructions)

	closed := closedFields(classified)
	if len(closed) > 0 {
		b.WriteString("\n\nClosed-vocabulary fields. For each of the following keys the value MUST be exactly one of its listed options, or the empty string if nothing in the resume matches:\n")
		for _, c := range closed {
			fmt.Fprintf(&b, "- %q (%s): one of [%s]\n", c.Name, c.Label, strings.Join(quoteAll(c.Options), ", "))
		}
		b.WriteString(closedFieldExamples)
	}

	b.WriteString("\n\nReturn a single JSON object with exactly this shape:\n")
	b.WriteString(buildSkeleton(classified))
	return b.String()
}

// BuildUserContent wraps the extracted document text as the user message.
func BuildUserContent(text string) string {
	return "Resume Text:\n" + text
}

func buildSkeleton(classified []fields.Classification) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, key := range []string{
		"full_name", "first_name", "last_name", "email", "phone", "mobile_phone",
		"address", "address_2", "city", "state", "zip", "location",
		"linkedin", "portfolio", "current_job_title", "total_experience_years",
	} {
		fmt.Fprintf(&b, "  %q: \"\",\n", key)
	}
	b.WriteString("  \"skills\": [],\n")
	b.WriteString("  \"education\": [{\"degree\": \"\", \"institution\": \"\", \"year\": \"\"}],\n")
	b.WriteString("  \"work_experience\": [{\"company\": \"\", \"job_title\": \"\", \"start_date\": \"\", \"end_date\": \"\", \"description\": \"\"}]")

	if len(classified) == 0 {
		b.WriteString("\n}")
		return b.String()
	}

	b.WriteString(",\n  \"custom_fields\": {\n")
	for i, c := range classified {
		comment := c.Label
		if c.Closed() {
			comment = fmt.Sprintf("%s; one of: %s", c.Label, strings.Join(c.Options, " | "))
		}
		fmt.Fprintf(&b, "    %q: \"\"", c.Name)
		if i < len(classified)-1 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "  // %s\n", comment)
	}
	b.WriteString("  }\n}")
	return b.String()
}

func closedFields(classified []fields.Classification) []fields.Classification {
	out := []fields.Classification{}
	for _, c := range classified {
		if c.Closed() {
			out = append(out, c)
		}
	}
	return out
}

func quoteAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprintf("%q", v))
	}
	return out
}
