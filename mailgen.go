// Package mailgen turns a declarative, schema-driven description of an email
// into a single self-contained HTML document, substitutes per-recipient
// variables, and normalizes the markup for mobile preview contexts.
package mailgen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-mailgen/pkg/compile"
	"github.com/goliatone/go-mailgen/pkg/render"
	"github.com/goliatone/go-mailgen/pkg/responsive"
	"github.com/goliatone/go-mailgen/pkg/schema"
	"github.com/goliatone/go-mailgen/pkg/template"
	"github.com/goliatone/go-mailgen/pkg/variables"
)

// Document is an ordered sequence of component instances; aliased from the
// template package for convenience.
type Document = template.Document

// ComponentInstance is one placed component within a document.
type ComponentInstance = template.ComponentInstance

// VariableMap holds resolved variables keyed by dotted path.
type VariableMap = variables.Map

// Mode selects the rendering context.
type Mode = render.Mode

const (
	ModeDesktop = render.ModeDesktop
	ModeMobile  = render.ModeMobile
)

// Option configures the compiler used by the convenience entry points.
type Option = compile.Option

// DefaultSchemaRegistry exposes the built-in component catalog.
func DefaultSchemaRegistry() *schema.Registry {
	return schema.DefaultRegistry()
}

// Compile resolves and renders the document for the given mode, returning a
// self-contained HTML string. It is the simplest entry point for callers
// that just want markup.
func Compile(ctx context.Context, doc Document, vars VariableMap, mode Mode, options ...Option) (string, error) {
	compiler := compile.New(options...)
	return compiler.Compile(ctx, compile.Request{
		Document:  doc,
		Variables: vars,
		Mode:      mode,
	})
}

// Preview compiles the document and, for the mobile mode, additionally runs
// the responsive normalization pass over the compiled markup so the result
// renders as a single fluid column in clients without media-query support.
func Preview(ctx context.Context, doc Document, vars VariableMap, mode Mode, options ...Option) (string, error) {
	compiled, err := Compile(ctx, doc, vars, mode, options...)
	if err != nil {
		return "", err
	}
	if mode != ModeMobile {
		return compiled, nil
	}
	return responsive.NormalizeHTML(compiled, responsive.ModeMobile)
}

// WithSchemaRegistry forwards a custom schema registry to the compiler.
func WithSchemaRegistry(registry *schema.Registry) Option {
	return compile.WithSchemaRegistry(registry)
}

// WithThemeSelector forwards a go-theme selector so brand tokens resolve
// ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return compile.WithThemeSelector(selector, name, variant)
}

// WithThemeTokens seeds design tokens directly.
func WithThemeTokens(tokens render.Tokens) Option {
	return compile.WithThemeTokens(tokens)
}
