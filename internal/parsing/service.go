package parsing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-parser/internal/fields"
	"resume-parser/internal/llm"
	"resume-parser/internal/shared/telemetry"
	"resume-parser/internal/shared/util"
)

// Exactly two states: first attempt, one retry. Never an open-ended policy.
const maxModelAttempts = 2

// DefaultEntityType is the entity type used when the caller does not name one.
const DefaultEntityType = "job-seekers"

// Service orchestrates the model-assisted parse path. The heuristic path is
// the package-level ParseHeuristic; the two are alternative strategies
// selected by the caller, never chained on failure.
type Service struct {
	LLM    llm.Client
	Fields fields.Source
	Model  string
}

// ParseWithModel runs one schema-driven extraction pass: fetch the tenant
// field schema, build the prompt, call the completion service, validate, and
// reconcile closed-vocabulary answers. Invalid model output triggers exactly
// one retry of the full completion request; a second failure surfaces as
// ErrInvalidModelOutput.
func (s *Service) ParseWithModel(ctx context.Context, text, entityType string) (ParsedResume, error) {
	if strings.TrimSpace(text) == "" {
		return ParsedResume{}, ErrEmptyText
	}
	if s.LLM == nil {
		return ParsedResume{}, fmt.Errorf("completion client is not configured")
	}
	if entityType == "" {
		entityType = DefaultEntityType
	}
	parseID := uuid.NewString()

	classified := s.loadFieldSchema(ctx, parseID, entityType)
	input := llm.CompletionInput{
		System: BuildExtractionPrompt(classified),
		User:   BuildUserContent(text),
	}

	var obj map[string]any
	for attempt := 1; attempt <= maxModelAttempts; attempt++ {
		raw, err := s.LLM.Complete(ctx, input)
		if err != nil {
			// Transport and credential failures are not retried here.
			return ParsedResume{}, fmt.Errorf("completion call: %w", err)
		}
		obj, err = decodeModelResponse(raw)
		if err == nil {
			break
		}
		telemetry.Error("parse.model_output_invalid", map[string]any{
			"parse_id": parseID,
			"attempt":  attempt,
			"error":    err.Error(),
		})
		if attempt == maxModelAttempts {
			return ParsedResume{}, ErrInvalidModelOutput
		}
	}

	result := coerceResult(obj, classified)
	resolveClosedFields(&result, classified)
	decomposeAddress(&result)
	result.Normalize()

	telemetry.Info("parse.completed", map[string]any{
		"parse_id":      parseID,
		"entity_type":   entityType,
		"custom_fields": len(result.CustomFields),
		"model":         s.Model,
		"prompt_hash":   util.HashPrompt(input.System),
	})
	return result, nil
}

// loadFieldSchema fetches and classifies the tenant's custom fields. Any
// failure degrades to zero custom fields; extraction proceeds regardless.
func (s *Service) loadFieldSchema(ctx context.Context, parseID, entityType string) []fields.Classification {
	if s.Fields == nil {
		return nil
	}
	defs, err := s.Fields.ListFields(ctx, entityType)
	if err != nil {
		telemetry.Error("parse.schema_fetch_failed", map[string]any{
			"parse_id":    parseID,
			"entity_type": entityType,
			"error":       err.Error(),
		})
		return nil
	}
	return fields.Classify(defs)
}

// resolveClosedFields reconciles each closed-vocabulary answer against its
// option list, dropping entries that match nothing.
func resolveClosedFields(r *ParsedResume, classified []fields.Classification) {
	if len(r.CustomFields) == 0 {
		return
	}
	for _, c := range classified {
		if !c.Closed() {
			continue
		}
		raw, ok := r.CustomFields[c.Label]
		if !ok {
			continue
		}
		resolved := ResolveOption(raw, c.Options)
		if resolved == "" {
			delete(r.CustomFields, c.Label)
			continue
		}
		r.CustomFields[c.Label] = resolved
	}
	if len(r.CustomFields) == 0 {
		r.CustomFields = nil
	}
}
