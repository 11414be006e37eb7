// Package compile walks a template document in order, resolves each component
// instance against the schema registry, and emits one self-contained HTML
// document. Compilation is pure and deterministic: it holds no state across
// invocations, performs no I/O, and is safe to run concurrently for different
// requests.
package compile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-mailgen/pkg/render"
	"github.com/goliatone/go-mailgen/pkg/renderers/email"
	"github.com/goliatone/go-mailgen/pkg/schema"
	mailtemplate "github.com/goliatone/go-mailgen/pkg/template"
	"github.com/goliatone/go-mailgen/pkg/variables"
)

// Option customises the compiler configuration.
type Option func(*Compiler)

// WithSchemaRegistry injects a custom component schema registry.
func WithSchemaRegistry(registry *schema.Registry) Option {
	return func(c *Compiler) {
		if registry != nil {
			c.schemas = registry
		}
	}
}

// WithRenderer injects a custom email renderer.
func WithRenderer(renderer *email.Renderer) Option {
	return func(c *Compiler) {
		if renderer != nil {
			c.renderer = renderer
		}
	}
}

// WithThemeTokens seeds design tokens directly, bypassing theme selection.
func WithThemeTokens(tokens render.Tokens) Option {
	return func(c *Compiler) {
		if len(tokens) == 0 {
			return
		}
		if c.tokens == nil {
			c.tokens = make(render.Tokens, len(tokens))
		}
		for name, value := range tokens {
			c.tokens[name] = value
		}
	}
}

// WithThemeSelector resolves a go-theme selection at construction time and
// merges the selected manifest's tokens into the compiler's token set.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(c *Compiler) {
		if selector == nil {
			return
		}
		selection, err := selector.Select(name, variant)
		if err != nil {
			c.initialiseErr = fmt.Errorf("compile: select theme %q/%q: %w", name, variant, err)
			return
		}
		if selection == nil || selection.Manifest == nil || len(selection.Manifest.Tokens) == 0 {
			return
		}
		if c.tokens == nil {
			c.tokens = make(render.Tokens, len(selection.Manifest.Tokens))
		}
		for token, value := range selection.Manifest.Tokens {
			c.tokens[token] = value
		}
	}
}

// Compiler coordinates the resolve → render → shell sequence. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
type Compiler struct {
	schemas       *schema.Registry
	renderer      *email.Renderer
	tokens        render.Tokens
	initialiseErr error
}

// New constructs a Compiler applying any provided options.
func New(options ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.applyDefaults()
	return c
}

func (c *Compiler) applyDefaults() {
	if c.schemas == nil {
		c.schemas = schema.DefaultRegistry()
	}
	if c.renderer == nil && c.initialiseErr == nil {
		renderer, err := email.New()
		if err != nil {
			c.initialiseErr = fmt.Errorf("compile: configure renderer: %w", err)
			return
		}
		c.renderer = renderer
	}
}

// Request describes the inputs required to compile one document.
type Request struct {
	// Document is the ordered component sequence to compile.
	Document mailtemplate.Document

	// Variables is the already-resolved variable map. Nil behaves as empty:
	// every token substitutes to "".
	Variables variables.Map

	// Mode selects the rendering context. Empty defaults to desktop.
	Mode render.Mode

	// Title overrides the document subject as the HTML title.
	Title string
}

// Compile executes the resolve → render → shell sequence and returns the
// complete HTML document. Per-instance problems (unknown component type,
// missing properties, malformed repeatable indices) degrade to omitting that
// piece; only a structurally invalid document fails the compile.
func (c *Compiler) Compile(ctx context.Context, req Request) (string, error) {
	if ctx == nil {
		return "", errors.New("compile: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.initialiseErr; err != nil {
		return "", err
	}

	if err := req.Document.Validate(); err != nil {
		return "", err
	}

	mode := req.Mode
	if mode == "" {
		mode = render.ModeDesktop
	}

	rc := render.Context{Mode: mode, Theme: c.tokens}

	var body strings.Builder
	for _, instance := range req.Document.Instances {
		componentSchema, ok := c.schemas.Get(instance.TypeName)
		if !ok {
			// Deprecated or unknown type: the rest of the document must
			// still render.
			continue
		}

		resolved := resolveComponent(componentSchema, instance, req.Variables, mode)

		fragment, ok, err := c.renderer.Fragment(resolved, rc)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		body.WriteString(fragment)
	}

	title := req.Title
	if title == "" {
		title = variables.Resolve(req.Document.Subject, req.Variables)
	}

	return c.renderer.Shell(email.ShellData{
		Title: title,
		Body:  body.String(),
		Theme: c.tokens,
	})
}
