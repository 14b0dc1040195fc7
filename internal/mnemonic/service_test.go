package mnemonic

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/abhisek/leafiz/internal/llm"
)

func validAidJSON() json.RawMessage {
	return json.RawMessage(`{
		"mnemonic": "San-SEVERE-ia: a severe sharp tongue, just like the snake plant's leaves.",
		"breakdown": "San / severe / ia - 'severe' points at the stiff, sharp leaves.",
		"fun_fact": "Snake plants release oxygen at night, unlike most houseplants."
	}`)
}

func testInput() Input {
	return Input{
		PlantID:        "sansevieria",
		ScientificName: "Sansevieria",
		CommonNames:    []string{"Snake Plant", "Mother-in-law's Tongue"},
		ErrorRate:      0.6,
		ConfusedWith:   []string{"Schefflera arboricola"},
	}
}

func waitForAid(t *testing.T, svc *Service) (*Aid, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if aid, ok := svc.ConsumeAid(); ok {
			return aid, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesAid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAidJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestAid(t.Context(), testInput())

	aid, ok := waitForAid(t, svc)
	if !ok || aid == nil {
		t.Fatal("expected aid to be generated")
	}
	if aid.PlantID != "sansevieria" {
		t.Errorf("plantID = %q", aid.PlantID)
	}
	if aid.Mnemonic == "" || aid.Breakdown == "" || aid.FunFact == "" {
		t.Errorf("incomplete aid: %+v", aid)
	}
}

func TestService_ConsumeClearsAid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAidJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestAid(t.Context(), testInput())
	if _, ok := waitForAid(t, svc); !ok {
		t.Fatal("no aid generated")
	}

	if _, ok := svc.ConsumeAid(); ok {
		t.Error("expected second ConsumeAid to return false")
	}
}

func TestService_LLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestAid(t.Context(), testInput())
	time.Sleep(100 * time.Millisecond)

	aid, ok := svc.ConsumeAid()
	if ok && aid != nil {
		t.Error("expected no aid on LLM error")
	}
}

func TestService_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAidJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestAid(t.Context(), testInput())
	if _, ok := waitForAid(t, svc); !ok {
		t.Fatal("no aid generated")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "memory-aid" {
		t.Error("expected schema name 'memory-aid'")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}
