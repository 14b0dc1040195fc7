// Package mnemonic generates personalized memory aids for the plants the
// player keeps missing. Generation runs off the UI goroutine; the screen
// polls ConsumeAid when it wants to show the result.
package mnemonic

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/leafiz/internal/llm"
)

// Service generates memory aids asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Aid
	err     error
	ready   bool
}

// NewService creates an aid generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestAid starts async aid generation. Only one aid is in-flight at a
// time — new requests replace pending ones.
func (s *Service) RequestAid(ctx context.Context, input Input) {
	go func() {
		aid, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = aid
		s.err = err
		s.ready = true
	}()
}

// ConsumeAid returns the pending aid if one is ready.
// Returns (nil, false) if no aid is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeAid() (*Aid, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	aid := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return aid, aid != nil
}

type aidOutput struct {
	Mnemonic  string `json:"mnemonic"`
	Breakdown string `json:"breakdown"`
	FunFact   string `json:"fun_fact"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Aid, error) {
	ctx = llm.WithPurpose(ctx, "memory-aid")

	req := llm.Request{
		System: aidSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAidUserMessage(input)},
		},
		Schema:      AidSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("memory-aid generation: %w", err)
	}

	var out aidOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse memory-aid response: %w", err)
	}

	return &Aid{
		PlantID:   input.PlantID,
		Mnemonic:  out.Mnemonic,
		Breakdown: out.Breakdown,
		FunFact:   out.FunFact,
	}, nil
}
