package gotemplate_test

import (
	"strings"
	"testing"
	"testing/fstest"

	gotemplate "github.com/goliatone/go-mailgen/pkg/render/template/gotemplate"
)

func TestNewRequiresASource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected construction without a source to fail")
	}
}

func TestRenderTemplateFromFS(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tmpl": {Data: []byte("Hello {{ name }}!")},
	}

	engine, err := gotemplate.New(
		gotemplate.WithFS(files),
		gotemplate.WithExtension(".tmpl"),
	)
	if err != nil {
		t.Fatalf("failed to construct engine: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "Sam"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "Hello Sam!" {
		t.Fatalf("unexpected output %q", out)
	}

	// Names carrying the extension already must not be double-suffixed.
	again, err := engine.RenderTemplate("greeting.tmpl", map[string]any{"name": "Ida"})
	if err != nil {
		t.Fatalf("render with explicit extension failed: %v", err)
	}
	if again != "Hello Ida!" {
		t.Fatalf("unexpected output %q", again)
	}
}

func TestRenderStringAndDispatch(t *testing.T) {
	files := fstest.MapFS{"noop.tmpl": {Data: []byte("noop")}}
	engine, err := gotemplate.New(gotemplate.WithFS(files), gotemplate.WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("failed to construct engine: %v", err)
	}

	out, err := engine.RenderString("{{ greeting }}, world", map[string]any{"greeting": "Hi"})
	if err != nil {
		t.Fatalf("render string failed: %v", err)
	}
	if out != "Hi, world" {
		t.Fatalf("unexpected output %q", out)
	}

	// Render dispatches inline content to RenderString.
	dispatched, err := engine.Render("{{ greeting }}!", map[string]any{"greeting": "Hey"})
	if err != nil {
		t.Fatalf("render dispatch failed: %v", err)
	}
	if dispatched != "Hey!" {
		t.Fatalf("unexpected output %q", dispatched)
	}
}

func TestGlobalData(t *testing.T) {
	files := fstest.MapFS{"noop.tmpl": {Data: []byte("noop")}}
	engine, err := gotemplate.New(
		gotemplate.WithFS(files),
		gotemplate.WithGlobalData(map[string]any{"brand": "Acme"}),
	)
	if err != nil {
		t.Fatalf("failed to construct engine: %v", err)
	}

	out, err := engine.RenderString("{{ brand }} rules", nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "Acme rules" {
		t.Fatalf("expected global value in output, got %q", out)
	}
}

func TestRenderStructDataConvertsThroughJSON(t *testing.T) {
	files := fstest.MapFS{"noop.tmpl": {Data: []byte("noop")}}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("failed to construct engine: %v", err)
	}

	data := struct {
		Name string `json:"name"`
	}{Name: "Sam"}

	out, err := engine.RenderString("Hello {{ name }}", data)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "Hello Sam" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("failed to construct engine: %v", err)
	}

	_, err = engine.RenderTemplate("absent", nil)
	if err == nil {
		t.Fatalf("expected missing template to fail")
	}
	if !strings.Contains(err.Error(), "absent") {
		t.Fatalf("expected error to name the template, got %v", err)
	}
}
