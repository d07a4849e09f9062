package parsing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"resume-parser/internal/fields"
	"resume-parser/internal/llm"
)

// scriptedClient returns its responses in order and counts calls.
type scriptedClient struct {
	responses []string
	errs      []error
	calls     int
}

func (c *scriptedClient) Complete(ctx context.Context, input llm.CompletionInput) (string, error) {
	_ = ctx
	_ = input
	idx := c.calls
	c.calls++
	if idx >= len(c.responses) {
		return "", fmt.Errorf("unexpected call %d", idx+1)
	}
	var err error
	if idx < len(c.errs) {
		err = c.errs[idx]
	}
	return c.responses[idx], err
}

type failingSource struct{}

func (failingSource) ListFields(ctx context.Context, entityType string) ([]fields.Definition, error) {
	return nil, errors.New("schema service down")
}

const validOutput = `{"full_name": "Jane Doe", "email": "jane@example.com", "skills": ["Go"]}`

func TestParseWithModelSucceedsFirstAttempt(t *testing.T) {
	client := &scriptedClient{responses: []string{validOutput}}
	svc := &Service{LLM: client, Fields: fields.StaticSource{}}

	got, err := svc.ParseWithModel(context.Background(), "resume text", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 completion call, got %d", client.calls)
	}
	if got.FullName != "Jane Doe" || got.Email != "jane@example.com" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.Education == nil || got.WorkExperience == nil {
		t.Fatalf("list fields must be non-nil: %+v", got)
	}
}

func TestParseWithModelRetriesOnceOnInvalidOutput(t *testing.T) {
	client := &scriptedClient{responses: []string{"this is not JSON", validOutput}}
	svc := &Service{LLM: client, Fields: fields.StaticSource{}}

	got, err := svc.ParseWithModel(context.Background(), "resume text", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 2 {
		t.Fatalf("expected exactly 2 completion calls, got %d", client.calls)
	}
	if got.FullName != "Jane Doe" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestParseWithModelFailsAfterSecondInvalidOutput(t *testing.T) {
	client := &scriptedClient{responses: []string{"garbage one", "garbage two"}}
	svc := &Service{LLM: client, Fields: fields.StaticSource{}}

	_, err := svc.ParseWithModel(context.Background(), "resume text", "")
	if !errors.Is(err, ErrInvalidModelOutput) {
		t.Fatalf("expected ErrInvalidModelOutput, got %v", err)
	}
	if client.calls != 2 {
		t.Fatalf("expected exactly 2 completion calls, got %d", client.calls)
	}
}

func TestParseWithModelDoesNotRetryTransportErrors(t *testing.T) {
	client := &scriptedClient{
		responses: []string{""},
		errs:      []error{errors.New("connection refused")},
	}
	svc := &Service{LLM: client, Fields: fields.StaticSource{}}

	_, err := svc.ParseWithModel(context.Background(), "resume text", "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrInvalidModelOutput) {
		t.Fatalf("transport error surfaced as invalid output: %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 completion call, got %d", client.calls)
	}
}

func TestParseWithModelEmptyText(t *testing.T) {
	client := &scriptedClient{}
	svc := &Service{LLM: client, Fields: fields.StaticSource{}}

	_, err := svc.ParseWithModel(context.Background(), "   \n  ", "")
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("completion called on empty text")
	}
}

func TestParseWithModelDegradesWhenSchemaFetchFails(t *testing.T) {
	client := &scriptedClient{responses: []string{validOutput}}
	svc := &Service{LLM: client, Fields: failingSource{}}

	got, err := svc.ParseWithModel(context.Background(), "resume text", "")
	if err != nil {
		t.Fatalf("schema failure should not fail the parse: %v", err)
	}
	if got.CustomFields != nil {
		t.Fatalf("expected no custom fields, got %v", got.CustomFields)
	}
}

func TestParseWithModelResolvesClosedFields(t *testing.T) {
	client := &scriptedClient{responses: []string{
		`{"full_name": "Jane Doe", "custom_fields": {"employment_type": "freelancer", "department": "Area 51"}}`,
	}}
	svc := &Service{
		LLM: client,
		Fields: fields.StaticSource{Defs: []fields.Definition{
			{FieldName: "employment_type", FieldLabel: "Employment Type", FieldType: "select", Options: []any{"Full-Time", "Freelance"}},
			{FieldName: "department", FieldLabel: "Department", FieldType: "select", Options: []any{"Engineering", "Sales"}},
		}},
	}

	got, err := svc.ParseWithModel(context.Background(), "resume text", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CustomFields["Employment Type"] != "Freelance" {
		t.Fatalf("employment type = %q, want Freelance", got.CustomFields["Employment Type"])
	}
	if _, ok := got.CustomFields["Department"]; ok {
		t.Fatalf("unmatched closed value kept: %v", got.CustomFields)
	}
}

func TestParseWithModelAddressFallback(t *testing.T) {
	client := &scriptedClient{responses: []string{
		`{"full_name": "Jane Doe", "location": "Austin, TX"}`,
	}}
	svc := &Service{LLM: client, Fields: fields.StaticSource{}}

	got, err := svc.ParseWithModel(context.Background(), "resume text", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Address != "Austin, TX" {
		t.Fatalf("address = %q", got.Address)
	}
}

func TestParseWithModelNoClientConfigured(t *testing.T) {
	svc := &Service{Fields: fields.StaticSource{}}
	if _, err := svc.ParseWithModel(context.Background(), "resume text", ""); err == nil {
		t.Fatalf("expected error when no completion client is configured")
	}
}
