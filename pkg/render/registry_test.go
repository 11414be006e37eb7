package render_test

import (
	"bytes"
	"testing"

	"github.com/goliatone/go-mailgen/pkg/render"
)

func noopRenderer(marker string) render.ComponentRenderer {
	return func(buf *bytes.Buffer, _ render.ResolvedComponent, _ render.Context) error {
		buf.WriteString(marker)
		return nil
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register("hero", noopRenderer("a")); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !registry.Has("hero") {
		t.Fatalf("expected hero to be registered")
	}

	renderer, ok := registry.Get("hero")
	if !ok {
		t.Fatalf("expected renderer lookup to succeed")
	}
	var buf bytes.Buffer
	if err := renderer(&buf, render.ResolvedComponent{}, render.Context{}); err != nil {
		t.Fatalf("renderer failed: %v", err)
	}
	if buf.String() != "a" {
		t.Fatalf("unexpected renderer output %q", buf.String())
	}
}

func TestRegistryReplacesExistingEntries(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister("hero", noopRenderer("first"))
	registry.MustRegister("hero", noopRenderer("second"))

	renderer, _ := registry.Get("hero")
	var buf bytes.Buffer
	_ = renderer(&buf, render.ResolvedComponent{}, render.Context{})
	if buf.String() != "second" {
		t.Fatalf("expected replacement to win, got %q", buf.String())
	}
}

func TestRegistryRejectsBadInput(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(" ", noopRenderer("x")); err == nil {
		t.Fatalf("expected blank name to be rejected")
	}
	if err := registry.Register("hero", nil); err == nil {
		t.Fatalf("expected nil renderer to be rejected")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	registry := render.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		registry.MustRegister(name, noopRenderer(name))
	}

	names := registry.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected sorted names %v, got %v", want, names)
		}
	}
}

func TestTokensGet(t *testing.T) {
	tokens := render.Tokens{"email.accent": "#ff0000", "email.blank": "  "}

	if got := tokens.Get("email.accent", "#000"); got != "#ff0000" {
		t.Fatalf("expected token value, got %q", got)
	}
	if got := tokens.Get("email.blank", "#000"); got != "#000" {
		t.Fatalf("expected fallback for blank token, got %q", got)
	}
	if got := tokens.Get("email.missing", "#000"); got != "#000" {
		t.Fatalf("expected fallback for missing token, got %q", got)
	}

	var nilTokens render.Tokens
	if got := nilTokens.Get("anything", "x"); got != "x" {
		t.Fatalf("expected fallback on nil tokens, got %q", got)
	}
}

func TestResolvedComponentAccessors(t *testing.T) {
	comp := render.ResolvedComponent{
		Values: map[string]string{"width": "600", "label": "", "bad": "wide"},
	}

	if got := comp.Get("label"); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
	if got := comp.GetOr("label", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := comp.Int("width", 0); got != 600 {
		t.Fatalf("expected parsed width 600, got %d", got)
	}
	if got := comp.Int("bad", 42); got != 42 {
		t.Fatalf("expected fallback for malformed int, got %d", got)
	}
	if got := comp.Int("missing", 7); got != 7 {
		t.Fatalf("expected fallback for missing int, got %d", got)
	}
}
