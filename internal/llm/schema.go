package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes the JSON document a request expects back. A Schema is
// built once at package init (see advice.PlanSchema) and shared; it
// compiles itself lazily on first use.
type Schema struct {
	// Name identifies the schema to the vendor APIs (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the document represents.
	Description string

	// Definition is the JSON Schema body.
	Definition map[string]any

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// validate checks raw against the schema. A failure is always an
// *ErrInvalidResponse carrying the offending content.
func (s *Schema) validate(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("not valid JSON: %w", err),
		}
	}

	compiled, err := s.compile()
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", s.Name, err),
		}
	}

	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema %q: %w", s.Name, err),
		}
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, not a Go map with typed
		// values in it. Round-trip through encoding/json to normalize.
		body, err := json.Marshal(s.Definition)
		if err != nil {
			s.compileErr = fmt.Errorf("marshal definition: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(body, &doc); err != nil {
			s.compileErr = fmt.Errorf("parse definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", s.Name)
		if err := c.AddResource(url, doc); err != nil {
			s.compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		s.compiled, s.compileErr = c.Compile(url)
	})
	return s.compiled, s.compileErr
}
