package advice

import "github.com/abhisek/maplecheck/internal/llm"

// PlanSchema defines the JSON schema for improvement plan generation.
var PlanSchema = &llm.Schema{
	Name:        "improvement-plan",
	Description: "An improvement plan for an Express Entry candidate's score",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence assessment of the candidate's current position",
			},
			"suggestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"action": map[string]any{
							"type":        "string",
							"description": "One concrete action the candidate can take",
						},
						"impact": map[string]any{
							"type":        "string",
							"description": "Estimated point impact, e.g. \"up to 50 points\"",
						},
					},
					"required":             []any{"action", "impact"},
					"additionalProperties": false,
				},
				"description": "2-5 suggestions ordered by expected impact",
			},
		},
		"required":             []any{"summary", "suggestions"},
		"additionalProperties": false,
	},
}
