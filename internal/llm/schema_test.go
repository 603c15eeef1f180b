package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func planLikeSchema() *Schema {
	return &Schema{
		Name:        "plan-outline",
		Description: "Improvement plan outline",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"score":   map[string]any{"type": "integer", "minimum": 0},
				"stream":  map[string]any{"type": "string", "enum": []any{"general", "cec", "pnp"}},
			},
			"required": []any{"summary", "score"},
		},
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"conforming", `{"summary":"Within reach of recent cutoffs.","score":455,"stream":"general"}`, false},
		{"optional field absent", `{"summary":"ok","score":455}`, false},
		{"missing required", `{"summary":"ok"}`, true},
		{"wrong type", `{"summary":"ok","score":"four fifty-five"}`, true},
		{"bad enum value", `{"summary":"ok","score":455,"stream":"lottery"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := planLikeSchema().validate(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestSchemaValidateNested(t *testing.T) {
	schema := &Schema{
		Name:        "nested-plan",
		Description: "Plan with suggestion list",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"suggestions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"action": map[string]any{"type": "string"},
							"impact": map[string]any{"type": "string"},
						},
						"required": []any{"action", "impact"},
					},
				},
			},
			"required": []any{"summary", "suggestions"},
		},
	}

	valid := json.RawMessage(`{"summary":"ok","suggestions":[{"action":"Retest French","impact":"up to 50 points"}]}`)
	if err := schema.validate(valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"summary":"ok","suggestions":[{"action":"Retest French"}]}`)
	if err := schema.validate(invalid); err == nil {
		t.Fatal("expected error for suggestion without impact")
	}
}

func TestSchemaCompilesOnce(t *testing.T) {
	s := planLikeSchema()
	if err := s.validate(json.RawMessage(`{"summary":"a","score":1}`)); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	first := s.compiled

	if err := s.validate(json.RawMessage(`{"summary":"b","score":2}`)); err != nil {
		t.Fatalf("second validate: %v", err)
	}
	if s.compiled != first {
		t.Fatal("schema recompiled between validations")
	}
}
