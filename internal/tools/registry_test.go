package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// stubTool is a minimal schema.Tool for registry and dispatcher tests.
type stubTool struct {
	name    string
	desc    string
	params  json.RawMessage
	execute func(ctx context.Context, args map[string]any) (string, error)
}

func (s *stubTool) Name() string                { return s.name }
func (s *stubTool) Description() string         { return s.desc }
func (s *stubTool) Parameters() json.RawMessage { return s.params }

func (s *stubTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	if s.execute != nil {
		return s.execute(ctx, args)
	}
	return "ok", nil
}

func newStubTool(name string) *stubTool {
	return &stubTool{
		name:   name,
		desc:   name + " description",
		params: json.RawMessage(`{"type":"object","properties":{},"required":[]}`),
	}
}

func TestRegistry_PreservesOrder(t *testing.T) {
	r := NewRegistryBuilder().
		WithTool(newStubTool("charlie")).
		WithTool(newStubTool("alpha")).
		WithTool(newStubTool("bravo")).
		Build()

	infos := r.Tools()
	want := []string{"charlie", "alpha", "bravo"}
	if len(infos) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(infos))
	}
	for i, name := range want {
		if infos[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, infos[i].Name)
		}
	}
}

func TestRegistry_ReRegisterReplaces(t *testing.T) {
	first := newStubTool("alpha")
	second := newStubTool("alpha")
	second.desc = "replacement"

	r := NewRegistryBuilder().
		WithTool(first).
		WithTool(newStubTool("bravo")).
		WithTool(second).
		Build()

	if r.Len() != 2 {
		t.Fatalf("expected 2 tools after replacement, got %d", r.Len())
	}
	infos := r.Tools()
	if infos[0].Name != "alpha" || infos[0].Description != "replacement" {
		t.Errorf("expected alpha replaced in place, got %+v", infos[0])
	}
	if infos[1].Name != "bravo" {
		t.Errorf("expected bravo second, got %q", infos[1].Name)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistryBuilder().WithTool(newStubTool("alpha")).Build()

	if tool, err := r.Lookup("alpha"); err != nil || tool == nil {
		t.Errorf("expected alpha found, got tool=%v err=%v", tool, err)
	}

	_, err := r.Lookup("missing")
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("expected ErrUnknownTool, got %v", err)
	}
	if r.Get("missing") != nil {
		t.Error("expected Get to return nil for a missing tool")
	}
}

func TestRegistry_SchemasVerbatim(t *testing.T) {
	raw := json.RawMessage(`{"type":"object","properties":{"ticker":{"type":"string"}},"required":["ticker"]}`)
	tool := newStubTool("alpha")
	tool.params = raw

	r := NewRegistryBuilder().WithTool(tool).Build()
	infos := r.Tools()
	if string(infos[0].InputSchema) != string(raw) {
		t.Errorf("schema altered: %s", infos[0].InputSchema)
	}
}
