package llm

import (
	"testing"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiAliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"score":   map[string]any{"type": "integer"},
			"stream":  map[string]any{"type": "string", "enum": []any{"general", "cec", "pnp"}},
			"suggestions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"summary", "score"},
	}

	schema := toGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["summary"].Type != "STRING" {
		t.Fatalf("summary: got %s", schema.Properties["summary"].Type)
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Fatalf("score: got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["stream"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["stream"].Enum))
	}
	if schema.Properties["suggestions"].Type != "ARRAY" {
		t.Fatalf("suggestions: got %s", schema.Properties["suggestions"].Type)
	}
	if schema.Properties["suggestions"].Items.Type != "STRING" {
		t.Fatalf("suggestion items: got %s", schema.Properties["suggestions"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
