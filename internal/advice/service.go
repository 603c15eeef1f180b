package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/maplecheck/internal/llm"
)

// Service generates improvement plans asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Plan
	err     error
	ready   bool
}

// NewService creates a plan generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestPlan starts async plan generation. Only one plan is in-flight at
// a time — new requests replace pending ones.
func (s *Service) RequestPlan(ctx context.Context, input Input) {
	go func() {
		plan, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = plan
		s.err = err
		s.ready = true
	}()
}

// ConsumePlan returns the pending plan if one is ready.
// Returns (nil, false) if no plan is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumePlan() (*Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	plan := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return plan, plan != nil
}

type planOutput struct {
	Summary     string             `json:"summary"`
	Suggestions []suggestionOutput `json:"suggestions"`
}

type suggestionOutput struct {
	Action string `json:"action"`
	Impact string `json:"impact"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Plan, error) {
	ctx = llm.WithPurpose(ctx, "advice")

	req := llm.Request{
		System:      planSystemPrompt,
		Prompt:      buildPlanPrompt(input),
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}

	plan := &Plan{Summary: out.Summary}
	for _, sug := range out.Suggestions {
		plan.Suggestions = append(plan.Suggestions, Suggestion{
			Action: sug.Action,
			Impact: sug.Impact,
		})
	}
	return plan, nil
}
